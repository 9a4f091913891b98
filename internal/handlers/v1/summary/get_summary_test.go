package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joy-trading/billing-server/internal/ledger"
)

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, customerName string) (ledger.CustomerSummary, error) {
	args := m.Called(ctx, customerName)
	result, _ := args.Get(0).(ledger.CustomerSummary)
	return result, args.Error(1)
}

func newTestAPI(t *testing.T, svc summarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetSummaryHandler(svc).Register(api)
	return api
}

func TestHTTP_GetSummary_Success(t *testing.T) {
	mockSvc := new(mockSummarizer)
	mockSvc.On("Summarize", mock.Anything, "Asha").Return(ledger.CustomerSummary{
		CustomerName:        "Asha",
		TotalTransactions:   2,
		TotalCreditPaise:    400000,
		TotalPaidPaise:      300000,
		TotalRemainingPaise: 100000,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/summary/Asha")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Asha", body.CustomerName)
	assert.Equal(t, 2, body.TotalTransactions)
	assert.Equal(t, int64(400000), body.TotalCreditPaise)
	assert.Equal(t, int64(300000), body.TotalPaidPaise)
	assert.Equal(t, int64(100000), body.TotalRemainingPaise)
	assert.Equal(t, "4000.00", body.TotalCredit)
	assert.Equal(t, "3000.00", body.TotalPaid)
	assert.Equal(t, "1000.00", body.TotalRemaining)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetSummary_UnknownCustomerAllZero(t *testing.T) {
	mockSvc := new(mockSummarizer)
	mockSvc.On("Summarize", mock.Anything, "Nobody").Return(ledger.CustomerSummary{
		CustomerName: "Nobody",
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/summary/Nobody")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.TotalTransactions)
	assert.Equal(t, int64(0), body.TotalRemainingPaise)
	assert.Equal(t, "0.00", body.TotalRemaining)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetSummary_ServiceError(t *testing.T) {
	mockSvc := new(mockSummarizer)
	mockSvc.On("Summarize", mock.Anything, "Asha").
		Return(ledger.CustomerSummary{}, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/summary/Asha")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
