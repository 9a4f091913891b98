package customer

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ErrDuplicateName is returned when inserting a name that already exists.
// Uniqueness is case-insensitive; the stored value keeps its original casing.
var ErrDuplicateName = errors.New("customer name already exists")

// Customer represents a customer record.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// CustomerCreate is the input for creating a new customer.
type CustomerCreate struct {
	Name    string
	Phone   string
	Address string
}

// ICustomerTable defines the interface for customer storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ICustomerTable --output mock_ICustomerTable.go
type ICustomerTable interface {
	// FindByName matches case-insensitively and returns (nil, nil) when
	// no customer exists with the name.
	FindByName(ctx context.Context, name string) (*Customer, error)
	Insert(ctx context.Context, create *CustomerCreate) (*Customer, error)
	// List returns all customers ordered by name ascending.
	List(ctx context.Context) ([]*Customer, error)
}
