package fish

// Fish is the API response model for a fish name.
type Fish struct {
	ID        string `json:"id" doc:"Fish UUID"`
	Name      string `json:"name" doc:"Fish name, case preserved as entered"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}
