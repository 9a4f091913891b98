package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/money"
	"github.com/joy-trading/billing-server/internal/operator/actions"
	"github.com/joy-trading/billing-server/internal/storage"
	"github.com/joy-trading/billing-server/internal/storage/transaction"
)

// TransactionService handles bill and payment business logic. The ledger
// package owns the money rules; this service wires them to storage through
// the write processor.
type TransactionService struct {
	storage *storage.Storage
	proc    processor
	guard   *ledger.Guard
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, proc processor, guard *ledger.Guard) *TransactionService {
	return &TransactionService{storage: store, proc: proc, guard: guard}
}

// CreateBill composes a bill from raw line entries and persists it. New
// customer and fish names are registered along the way. Returns the stored
// transaction with its id and creation time.
func (s *TransactionService) CreateBill(ctx context.Context, customerName string, entries []ledger.LineEntry) (*ledger.Transaction, error) {
	bill, err := ledger.ComposeBill(customerName, entries)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateBill{Bill: bill}
	if err := s.proc.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Bill, nil
}

// ListTransactions returns transactions newest-first, optionally restricted
// to one customer.
func (s *TransactionService) ListTransactions(ctx context.Context, customerName *string) ([]*ledger.Transaction, error) {
	return s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		CustomerName: customerName,
	})
}

// GetTransaction retrieves a transaction by id.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return s.storage.Transactions.FindByID(ctx, id, false)
}

// ApplyPayment records a payment against the transaction and returns the
// updated state. Ledger violations (non-positive amount, overpayment) come
// back as the ledger sentinel errors with the stored state untouched.
func (s *TransactionService) ApplyPayment(ctx context.Context, id uuid.UUID, amount money.Money, note string) (*ledger.Transaction, error) {
	action := &actions.ApplyPayment{
		ID:          id,
		AmountPaise: amount,
		Note:        note,
		Guard:       s.guard,
	}
	if err := s.proc.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Updated, nil
}

// Summarize folds one customer's transactions into their summary.
func (s *TransactionService) Summarize(ctx context.Context, customerName string) (ledger.CustomerSummary, error) {
	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		CustomerName: &customerName,
	})
	if err != nil {
		return ledger.CustomerSummary{}, err
	}
	return ledger.Summarize(customerName, rows), nil
}
