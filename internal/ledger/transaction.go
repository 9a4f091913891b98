// Package ledger owns the money ledger for customer bills: composing a bill
// from raw line entries, applying partial payments against the outstanding
// balance, and folding transactions into per-customer summaries.
//
// Every operation maintains the ledger invariant:
//
//	TotalPaise     = sum of item totals
//	PaidPaise      = sum of payment amounts
//	RemainingPaise = TotalPaise - PaidPaise
//	0 <= PaidPaise <= TotalPaise
package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/money"
)

// LineItem is one line of a bill. Boxes keeps the raw quantity text as
// entered; CostPerBoxPaise and TotalPaise are in paise.
type LineItem struct {
	FishName        string      `json:"fishName"`
	Boxes           string      `json:"boxes"`
	CostPerBoxPaise money.Money `json:"costPerBoxPaise"`
	TotalPaise      money.Money `json:"totalPaise"`
}

// Payment is one partial payment against a transaction. Payments are
// append-only: once recorded they are never edited or removed.
type Payment struct {
	AmountPaise money.Money `json:"amountPaise"`
	Note        string      `json:"note,omitempty"`
	Date        time.Time   `json:"date"`
}

// Status is a transaction's settlement state.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

// Transaction is a customer bill plus its payment ledger. Items and
// TotalPaise are fixed at creation; the only mutation is appending a
// payment via ApplyPayment.
type Transaction struct {
	ID             uuid.UUID
	CustomerName   string
	Items          []LineItem
	TotalPaise     money.Money
	PaidPaise      money.Money
	RemainingPaise money.Money
	Payments       []Payment
	CreatedAt      time.Time
}

// Status returns Paid when nothing remains outstanding.
func (t *Transaction) Status() Status {
	if t.RemainingPaise == 0 {
		return StatusPaid
	}
	return StatusPending
}
