package actions

import (
	"context"
	"errors"
	"time"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/storage"
	"github.com/joy-trading/billing-server/internal/storage/customer"
	"github.com/joy-trading/billing-server/internal/storage/fish"
)

// CreateBill persists a composed bill. The customer and every fish name on
// the bill are registered first if they are new; registering an existing
// name is a no-op, never an error. The bill's ID and CreatedAt are filled
// in on success.
type CreateBill struct {
	Bill *ledger.Transaction

	IAction
}

func (c *CreateBill) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Customers.FindByName(ctx, c.Bill.CustomerName)
	if err != nil {
		return err
	}
	if existing == nil {
		_, err = writer.Customers.Insert(ctx, &customer.CustomerCreate{Name: c.Bill.CustomerName})
		// A concurrent registration of the same name is fine.
		if err != nil && !errors.Is(err, customer.ErrDuplicateName) {
			return err
		}
	}

	for _, item := range c.Bill.Items {
		existingFish, err := writer.Fish.FindByName(ctx, item.FishName)
		if err != nil {
			return err
		}
		if existingFish != nil {
			continue
		}
		if _, err = writer.Fish.Insert(ctx, item.FishName); err != nil && !errors.Is(err, fish.ErrDuplicateName) {
			return err
		}
	}

	c.Bill.CreatedAt = time.Now().UTC()
	id, err := writer.Transactions.Insert(ctx, c.Bill)
	if err != nil {
		return err
	}
	c.Bill.ID = id

	return nil
}
