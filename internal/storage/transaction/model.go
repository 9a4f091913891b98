package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/ledger"
)

// TransactionFilter specifies filters for listing transactions.
// A nil filter (or nil CustomerName) returns all transactions.
type TransactionFilter struct {
	CustomerName *string
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	// Insert stores a new transaction and returns its generated id and
	// creation time via the passed-in record.
	Insert(ctx context.Context, tx *ledger.Transaction) (uuid.UUID, error)
	// FindByID returns sql.ErrNoRows (wrapped) for unknown ids. With
	// forUpdate set the row is locked for the duration of the surrounding
	// database transaction, serializing concurrent payment application.
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*ledger.Transaction, error)
	// List returns transactions newest-first by creation time.
	List(ctx context.Context, filter *TransactionFilter) ([]*ledger.Transaction, error)
	// Update persists the mutable ledger fields (paid, remaining, payments)
	// after a payment has been applied. Items and total never change.
	Update(ctx context.Context, id uuid.UUID, tx *ledger.Transaction) error
}
