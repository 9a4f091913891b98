package ledger

import (
	"strings"

	"github.com/joy-trading/billing-server/internal/money"
)

// LineEntry is the raw input for one bill line, exactly as the caller
// typed it: quantity and unit price as decimal strings.
type LineEntry struct {
	FishName   string
	Boxes      string
	CostPerBox string
}

// ComposeBill builds a draft transaction from raw line entries.
//
// Entries missing any of fishName, boxes, or costPerBox are dropped. If the
// customer name is blank or no entries survive the filter, a ValidationError
// is returned and nothing is written anywhere. Each surviving line's total
// is money.Mul(parse(boxes), parse(costPerBox)); the bill total is their sum.
//
// The draft starts unpaid: PaidPaise 0, RemainingPaise equal to the total,
// and an empty payment list. ID and CreatedAt are assigned at persist time.
func ComposeBill(customerName string, entries []LineEntry) (*Transaction, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, &ValidationError{Reason: "customer name is required"}
	}

	var items []LineItem
	var total money.Money
	for _, e := range entries {
		if e.FishName == "" || e.Boxes == "" || e.CostPerBox == "" {
			continue
		}
		lineTotal := money.Mul(money.Parse(e.Boxes), money.Parse(e.CostPerBox))
		items = append(items, LineItem{
			FishName:        e.FishName,
			Boxes:           e.Boxes,
			CostPerBoxPaise: money.Parse(e.CostPerBox),
			TotalPaise:      lineTotal,
		})
		total = total.Add(lineTotal)
	}

	if len(items) == 0 {
		return nil, &ValidationError{Reason: "at least one complete item is required"}
	}

	return &Transaction{
		CustomerName:   customerName,
		Items:          items,
		TotalPaise:     total,
		PaidPaise:      0,
		RemainingPaise: total,
		Payments:       []Payment{},
	}, nil
}
