package customer

// Customer is the API response model for a customer.
type Customer struct {
	ID        string `json:"id" doc:"Customer UUID"`
	Name      string `json:"name" doc:"Customer name, case preserved as entered"`
	Phone     string `json:"phone,omitempty" doc:"Contact phone number"`
	Address   string `json:"address,omitempty" doc:"Postal address"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}
