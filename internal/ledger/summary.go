package ledger

import (
	"strings"

	"github.com/joy-trading/billing-server/internal/money"
)

// CustomerSummary is the derived roll-up of one customer's transactions.
// It is computed on demand and never stored.
type CustomerSummary struct {
	CustomerName        string
	TotalTransactions   int
	TotalCreditPaise    money.Money
	TotalPaidPaise      money.Money
	TotalRemainingPaise money.Money
}

// Summarize folds total, paid, and remaining across the transactions whose
// customer name matches ignoring case. Names are unique ignoring case but
// stored case-preserving, so bills entered with different casing still fold
// into one summary. Sums are plain integer additions.
func Summarize(customerName string, txs []*Transaction) CustomerSummary {
	summary := CustomerSummary{CustomerName: customerName}
	for _, t := range txs {
		if !strings.EqualFold(t.CustomerName, customerName) {
			continue
		}
		summary.TotalTransactions++
		summary.TotalCreditPaise = summary.TotalCreditPaise.Add(t.TotalPaise)
		summary.TotalPaidPaise = summary.TotalPaidPaise.Add(t.PaidPaise)
		summary.TotalRemainingPaise = summary.TotalRemainingPaise.Add(t.RemainingPaise)
	}
	return summary
}
