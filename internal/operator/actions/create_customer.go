package actions

import (
	"context"

	"github.com/joy-trading/billing-server/internal/storage"
	"github.com/joy-trading/billing-server/internal/storage/customer"
)

// CreateCustomer registers a customer explicitly. Unlike the registration
// inside CreateBill, a duplicate name here surfaces ErrDuplicateName to the
// caller. Created holds the stored record on success.
type CreateCustomer struct {
	Name    string
	Phone   string
	Address string

	Created *customer.Customer

	IAction
}

func (c *CreateCustomer) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Customers.Insert(ctx, &customer.CustomerCreate{
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
	})
	if err != nil {
		return err
	}

	c.Created = created
	return nil
}
