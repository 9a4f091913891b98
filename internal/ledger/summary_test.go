package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joy-trading/billing-server/internal/money"
)

func TestSummarize(t *testing.T) {
	first := newBill(t, "2500.00")
	assert.NoError(t, first.ApplyPayment(250000, "", time.Now()))

	second := newBill(t, "1500.00")
	assert.NoError(t, second.ApplyPayment(50000, "", time.Now()))

	summary := Summarize("Asha", []*Transaction{first, second})

	assert.Equal(t, "Asha", summary.CustomerName)
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, money.Money(400000), summary.TotalCreditPaise)
	assert.Equal(t, money.Money(300000), summary.TotalPaidPaise)
	assert.Equal(t, money.Money(100000), summary.TotalRemainingPaise)

	assert.Equal(t, "4000.00", summary.TotalCreditPaise.Format())
	assert.Equal(t, "3000.00", summary.TotalPaidPaise.Format())
	assert.Equal(t, "1000.00", summary.TotalRemainingPaise.Format())
}

func TestSummarize_NoTransactions(t *testing.T) {
	summary := Summarize("Asha", nil)

	assert.Equal(t, "Asha", summary.CustomerName)
	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Equal(t, money.Money(0), summary.TotalCreditPaise)
}

func TestSummarize_MatchesNameIgnoringCase(t *testing.T) {
	bill := newBill(t, "100.00")

	summary := Summarize("asha", []*Transaction{bill})
	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, money.Money(10000), summary.TotalCreditPaise)
}

func TestSummarize_SkipsOtherCustomers(t *testing.T) {
	bill := newBill(t, "100.00")

	summary := Summarize("Binod", []*Transaction{bill})
	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Equal(t, money.Money(0), summary.TotalCreditPaise)
}
