package customer

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joy-trading/billing-server/internal/logging"
	"github.com/joy-trading/billing-server/internal/service"
)

// ListCustomersInput is the Huma input for listing customers.
type ListCustomersInput struct{}

// ListCustomersResponseBody is the response body for listing customers.
type ListCustomersResponseBody struct {
	Customers []Customer `json:"customers" doc:"All customers ordered by name"`
}

// ListCustomersOutput is the Huma output for listing customers.
type ListCustomersOutput struct {
	Body ListCustomersResponseBody
}

// customerLister is the interface for listing customers.
type customerLister interface {
	ListCustomers(ctx context.Context) ([]service.Customer, error)
}

// ListCustomersHandler handles GET /v1/customers.
type ListCustomersHandler struct {
	CustomerService customerLister
}

// NewListCustomersHandler creates a new ListCustomersHandler.
func NewListCustomersHandler(svc customerLister) *ListCustomersHandler {
	return &ListCustomersHandler{CustomerService: svc}
}

// Register registers the list customers endpoint with the Huma API.
func (h *ListCustomersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-customers",
		Method:      http.MethodGet,
		Path:        "/v1/customers",
		Summary:     "List customers",
		Description: "Returns all customers ordered by name.",
		Tags:        []string{"Customers"},
	}, h.handle)
}

func (h *ListCustomersHandler) handle(ctx context.Context, _ *ListCustomersInput) (*ListCustomersOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCustomersMs")
	}
	customers, err := h.CustomerService.ListCustomers(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list customers", err)
	}

	if logData != nil {
		logData.AddData("customerCount", len(customers))
	}

	resp := ListCustomersResponseBody{
		Customers: make([]Customer, len(customers)),
	}
	for i, c := range customers {
		resp.Customers[i] = Customer{
			ID:        c.ID.String(),
			Name:      c.Name,
			Phone:     c.Phone,
			Address:   c.Address,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListCustomersOutput{Body: resp}, nil
}
