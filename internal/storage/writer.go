package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/joy-trading/billing-server/internal/storage/customer"
	"github.com/joy-trading/billing-server/internal/storage/fish"
	"github.com/joy-trading/billing-server/internal/storage/transaction"
)

// Writer exposes the tables bound to one open database transaction.
type Writer struct {
	tx           bob.Tx
	Customers    customer.ICustomerTable
	Fish         fish.IFishTable
	Transactions transaction.ITransactionTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Customers:    customer.NewTable(tx),
		Fish:         fish.NewTable(tx),
		Transactions: transaction.NewTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
