package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/operator/actions"
	"github.com/joy-trading/billing-server/internal/storage"
	"github.com/joy-trading/billing-server/internal/storage/customer"
	"github.com/joy-trading/billing-server/internal/storage/fish"
	"github.com/joy-trading/billing-server/internal/storage/transaction"
)

// fakeProcessor runs actions inline against a writer whose tables are mocks,
// standing in for the operator delegator.
type fakeProcessor struct {
	writer *storage.Writer
	err    error
}

func (p *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

type mockCustomerTable struct {
	mock.Mock
}

func (m *mockCustomerTable) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerTable) Insert(ctx context.Context, create *customer.CustomerCreate) (*customer.Customer, error) {
	args := m.Called(ctx, create)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerTable) List(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*customer.Customer)
	return rows, args.Error(1)
}

type mockFishTable struct {
	mock.Mock
}

func (m *mockFishTable) FindByName(ctx context.Context, name string) (*fish.Fish, error) {
	args := m.Called(ctx, name)
	f, _ := args.Get(0).(*fish.Fish)
	return f, args.Error(1)
}

func (m *mockFishTable) Insert(ctx context.Context, name string) (*fish.Fish, error) {
	args := m.Called(ctx, name)
	f, _ := args.Get(0).(*fish.Fish)
	return f, args.Error(1)
}

func (m *mockFishTable) List(ctx context.Context) ([]*fish.Fish, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*fish.Fish)
	return rows, args.Error(1)
}

func (m *mockFishTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, tx *ledger.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, tx)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*ledger.Transaction, error) {
	args := m.Called(ctx, id, forUpdate)
	tx, _ := args.Get(0).(*ledger.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*ledger.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, id uuid.UUID, tx *ledger.Transaction) error {
	args := m.Called(ctx, id, tx)
	return args.Error(0)
}
