package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joy-trading/billing-server/internal/service"
	"github.com/joy-trading/billing-server/internal/storage/customer"
)

type mockCustomerCreator struct {
	mock.Mock
}

func (m *mockCustomerCreator) CreateCustomer(ctx context.Context, c service.Customer) (service.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(service.Customer)
	return created, args.Error(1)
}

func newCreateTestAPI(t *testing.T, svc customerCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateCustomerHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateCustomer_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCustomerCreator)
	mockSvc.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c service.Customer) bool {
		return c.Name == "Asha" && c.Phone == "9876543210" && c.Address == "Harbour Road"
	})).Return(service.Customer{
		ID:        id,
		Name:      "Asha",
		Phone:     "9876543210",
		Address:   "Harbour Road",
		CreatedAt: now,
	}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/customers", CreateCustomerBody{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "Harbour Road",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Customer
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "Asha", body.Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCustomer_MissingName(t *testing.T) {
	mockSvc := new(mockCustomerCreator)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/customers", CreateCustomerBody{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCustomer")
}

func TestHTTP_CreateCustomer_DuplicateName(t *testing.T) {
	mockSvc := new(mockCustomerCreator)
	mockSvc.On("CreateCustomer", mock.Anything, mock.Anything).
		Return(service.Customer{}, customer.ErrDuplicateName)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/customers", CreateCustomerBody{
		Name: "asha",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}
