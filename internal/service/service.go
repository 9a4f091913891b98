package service

import (
	"context"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/operator/actions"
	"github.com/joy-trading/billing-server/internal/storage"
)

// processor executes a write action to completion; the operator delegator
// satisfies this.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Customer    *CustomerService
	Fish        *FishService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage and write processor.
func NewService(store *storage.Storage, proc processor) *Service {
	return &Service{
		Customer:    NewCustomerService(store, proc),
		Fish:        NewFishService(store, proc),
		Transaction: NewTransactionService(store, proc, ledger.NewGuard()),
	}
}
