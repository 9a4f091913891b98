package customer

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joy-trading/billing-server/internal/logging"
	"github.com/joy-trading/billing-server/internal/service"
	"github.com/joy-trading/billing-server/internal/storage/customer"
)

// CreateCustomerBody is the request body for creating a customer.
type CreateCustomerBody struct {
	Name    string `json:"name" minLength:"1" doc:"Customer name, unique ignoring case"`
	Phone   string `json:"phone,omitempty" doc:"Contact phone number"`
	Address string `json:"address,omitempty" doc:"Postal address"`
}

// CreateCustomerInput is the Huma input for creating a customer.
type CreateCustomerInput struct {
	Body CreateCustomerBody
}

// CreateCustomerOutput is the Huma output for creating a customer.
type CreateCustomerOutput struct {
	Status int
	Body   Customer
}

// customerCreator is the interface for creating customers.
type customerCreator interface {
	CreateCustomer(ctx context.Context, c service.Customer) (service.Customer, error)
}

// CreateCustomerHandler handles POST /v1/customers.
type CreateCustomerHandler struct {
	CustomerService customerCreator
}

// NewCreateCustomerHandler creates a new CreateCustomerHandler.
func NewCreateCustomerHandler(svc customerCreator) *CreateCustomerHandler {
	return &CreateCustomerHandler{CustomerService: svc}
}

// Register registers the create customer endpoint with the Huma API.
func (h *CreateCustomerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-customer",
		Method:      http.MethodPost,
		Path:        "/v1/customers",
		Summary:     "Create a customer",
		Description: "Registers a new customer. Names are unique ignoring case.",
		Tags:        []string{"Customers"},
	}, h.handle)
}

func (h *CreateCustomerHandler) handle(ctx context.Context, input *CreateCustomerInput) (*CreateCustomerOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCustomerMs")
	}
	created, err := h.CustomerService.CreateCustomer(ctx, service.Customer{
		Name:    input.Body.Name,
		Phone:   input.Body.Phone,
		Address: input.Body.Address,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, customer.ErrDuplicateName) {
			return nil, huma.NewError(http.StatusConflict, "customer already exists", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create customer", err)
	}

	if logData != nil {
		logData.AddData("customerID", created.ID.String())
	}

	return &CreateCustomerOutput{
		Status: http.StatusCreated,
		Body: Customer{
			ID:        created.ID.String(),
			Name:      created.Name,
			Phone:     created.Phone,
			Address:   created.Address,
			CreatedAt: created.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}
