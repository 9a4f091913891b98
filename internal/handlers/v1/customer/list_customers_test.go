package customer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joy-trading/billing-server/internal/service"
)

type mockCustomerLister struct {
	mock.Mock
}

func (m *mockCustomerLister) ListCustomers(ctx context.Context) ([]service.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]service.Customer)
	return customers, args.Error(1)
}

func newListTestAPI(t *testing.T, svc customerLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListCustomersHandler(svc).Register(api)
	return api
}

func TestHTTP_ListCustomers_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ashaID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCustomerLister)
	mockSvc.On("ListCustomers", mock.Anything).Return([]service.Customer{
		{ID: ashaID, Name: "Asha", Phone: "9876543210", CreatedAt: now},
		{ID: uuid.Must(uuid.NewV4()), Name: "Binod", CreatedAt: now},
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/customers")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCustomersResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Customers, 2)
	assert.Equal(t, ashaID.String(), body.Customers[0].ID)
	assert.Equal(t, "Asha", body.Customers[0].Name)
	assert.Equal(t, "9876543210", body.Customers[0].Phone)
	assert.Equal(t, now.Format(time.RFC3339), body.Customers[0].CreatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCustomers_Empty(t *testing.T) {
	mockSvc := new(mockCustomerLister)
	mockSvc.On("ListCustomers", mock.Anything).Return(([]service.Customer)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/customers")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCustomersResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Customers)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCustomers_ServiceError(t *testing.T) {
	mockSvc := new(mockCustomerLister)
	mockSvc.On("ListCustomers", mock.Anything).
		Return(([]service.Customer)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/customers")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
