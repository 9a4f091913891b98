package transaction

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

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/money"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, customerName *string) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, customerName)
	transactions, _ := args.Get(0).([]*ledger.Transaction)
	return transactions, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func billFixture(customerName string, total, paid int64, createdAt time.Time) *ledger.Transaction {
	return &ledger.Transaction{
		ID:           uuid.Must(uuid.NewV4()),
		CustomerName: customerName,
		Items: []ledger.LineItem{
			{FishName: "Pomfret", Boxes: "10", CostPerBoxPaise: 25000, TotalPaise: 250000},
		},
		TotalPaise:     money.Money(total),
		PaidPaise:      money.Money(paid),
		RemainingPaise: money.Money(total - paid),
		Payments:       []ledger.Payment{},
		CreatedAt:      createdAt,
	}
}

func TestHTTP_ListTransactions_All(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newest := billFixture("Asha", 250000, 0, now)
	oldest := billFixture("Binod", 100000, 100000, now.Add(-time.Hour))

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, (*string)(nil)).
		Return([]*ledger.Transaction{newest, oldest}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, newest.ID.String(), body.Transactions[0].ID)
	assert.Equal(t, "pending", body.Transactions[0].Status)
	assert.Equal(t, "paid", body.Transactions[1].Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ByCustomer(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bill := billFixture("Asha", 250000, 100000, now)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(name *string) bool {
		return name != nil && *name == "Asha"
	})).Return([]*ledger.Transaction{bill}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions/customer/Asha")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "Asha", body.Transactions[0].CustomerName)
	assert.Equal(t, int64(150000), body.Transactions[0].RemainingPaise)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_UnknownCustomerEmpty(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).
		Return(([]*ledger.Transaction)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions/customer/Nobody")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).
		Return(([]*ledger.Transaction)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
