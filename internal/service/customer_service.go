package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/operator/actions"
	"github.com/joy-trading/billing-server/internal/storage"
	"github.com/joy-trading/billing-server/internal/storage/customer"
)

// Customer represents a customer in the service layer.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// CustomerService handles customer business logic.
type CustomerService struct {
	storage *storage.Storage
	proc    processor
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(store *storage.Storage, proc processor) *CustomerService {
	return &CustomerService{storage: store, proc: proc}
}

// ListCustomers returns all customers ordered by name.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.storage.Customers.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Customer, len(rows))
	for i, row := range rows {
		converted[i] = customerFromStorage(row)
	}
	return converted, nil
}

// CreateCustomer registers a new customer. Duplicate names surface
// customer.ErrDuplicateName.
func (s *CustomerService) CreateCustomer(ctx context.Context, c Customer) (Customer, error) {
	action := &actions.CreateCustomer{
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
	}
	if err := s.proc.Process(ctx, action); err != nil {
		return Customer{}, err
	}
	return customerFromStorage(action.Created), nil
}

func customerFromStorage(row *customer.Customer) Customer {
	return Customer{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     row.Phone,
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
	}
}
