package ledger

import (
	"time"

	"github.com/joy-trading/billing-server/internal/money"
)

// ApplyPayment records a partial payment against the transaction.
//
// Payments of zero or less fail with ErrNonPositivePayment; payments larger
// than the remaining balance fail with ErrOverpayment. On failure the
// transaction is left untouched.
//
// PaidPaise is recomputed as the sum over the full payment history rather
// than incremented, and RemainingPaise re-derived from the total, so the
// stored fields always agree with the payment list.
//
// Callers must hold per-transaction exclusivity (Guard.WithLock or a row
// lock) around the load/apply/store cycle; two concurrent payments that
// each fit the remaining balance alone must never both be accepted when
// together they exceed it.
func (t *Transaction) ApplyPayment(amount money.Money, note string, now time.Time) error {
	if amount <= 0 {
		return ErrNonPositivePayment
	}
	if amount > t.RemainingPaise {
		return ErrOverpayment
	}

	t.Payments = append(t.Payments, Payment{
		AmountPaise: amount,
		Note:        note,
		Date:        now,
	})

	var paid money.Money
	for _, p := range t.Payments {
		paid = paid.Add(p.AmountPaise)
	}
	t.PaidPaise = paid
	t.RemainingPaise = t.TotalPaise.Sub(paid)

	return nil
}
