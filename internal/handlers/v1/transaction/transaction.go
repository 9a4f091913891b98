package transaction

import (
	"time"

	"github.com/joy-trading/billing-server/internal/ledger"
)

// LineItem is the API model for one bill line.
type LineItem struct {
	FishName        string `json:"fishName" doc:"Fish name as billed"`
	Boxes           string `json:"boxes" doc:"Quantity exactly as entered"`
	CostPerBoxPaise int64  `json:"costPerBoxPaise" doc:"Unit price in paise"`
	TotalPaise      int64  `json:"totalPaise" doc:"Line total in paise"`
}

// Payment is the API model for one recorded payment.
type Payment struct {
	AmountPaise int64  `json:"amountPaise" doc:"Payment amount in paise"`
	Note        string `json:"note,omitempty" doc:"Optional payment note"`
	Date        string `json:"date" doc:"RFC3339 payment time"`
}

// Transaction is the API response model for a bill with its payment ledger.
type Transaction struct {
	ID             string     `json:"id" doc:"Transaction UUID"`
	CustomerName   string     `json:"customerName" doc:"Customer the bill belongs to"`
	Items          []LineItem `json:"items" doc:"Bill line items"`
	TotalPaise     int64      `json:"totalPaise" doc:"Bill total in paise"`
	PaidPaise      int64      `json:"paidPaise" doc:"Sum of payments in paise"`
	RemainingPaise int64      `json:"remainingPaise" doc:"Outstanding balance in paise"`
	Status         string     `json:"status" enum:"paid,pending" doc:"paid when nothing remains outstanding"`
	Payments       []Payment  `json:"payments" doc:"Payment history, oldest first"`
	CreatedAt      string     `json:"createdAt" doc:"RFC3339 creation time"`
}

// fromLedger converts a ledger transaction to the API model.
func fromLedger(tx *ledger.Transaction) Transaction {
	items := make([]LineItem, len(tx.Items))
	for i, item := range tx.Items {
		items[i] = LineItem{
			FishName:        item.FishName,
			Boxes:           item.Boxes,
			CostPerBoxPaise: int64(item.CostPerBoxPaise),
			TotalPaise:      int64(item.TotalPaise),
		}
	}

	payments := make([]Payment, len(tx.Payments))
	for i, p := range tx.Payments {
		payments[i] = Payment{
			AmountPaise: int64(p.AmountPaise),
			Note:        p.Note,
			Date:        p.Date.Format(time.RFC3339),
		}
	}

	return Transaction{
		ID:             tx.ID.String(),
		CustomerName:   tx.CustomerName,
		Items:          items,
		TotalPaise:     int64(tx.TotalPaise),
		PaidPaise:      int64(tx.PaidPaise),
		RemainingPaise: int64(tx.RemainingPaise),
		Status:         string(tx.Status()),
		Payments:       payments,
		CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
	}
}
