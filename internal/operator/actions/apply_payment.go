package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/money"
	"github.com/joy-trading/billing-server/internal/storage"
)

// ApplyPayment records a payment against one transaction. The read-modify-
// write runs under the guard's per-id lock and the row is additionally
// locked FOR UPDATE inside the database transaction, so two payments
// against the same transaction can never both read the same remaining
// balance. Updated carries the new state back to the caller on success.
type ApplyPayment struct {
	ID          uuid.UUID
	AmountPaise money.Money
	Note        string
	Guard       *ledger.Guard

	Updated *ledger.Transaction

	IAction
}

func (a *ApplyPayment) Perform(ctx context.Context, writer *storage.Writer) error {
	return a.Guard.WithLock(a.ID, func() error {
		tx, err := writer.Transactions.FindByID(ctx, a.ID, true)
		if err != nil {
			return err
		}

		if err := tx.ApplyPayment(a.AmountPaise, a.Note, time.Now().UTC()); err != nil {
			return err
		}

		if err := writer.Transactions.Update(ctx, a.ID, tx); err != nil {
			return err
		}

		a.Updated = tx
		return nil
	})
}
