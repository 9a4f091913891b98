package fish

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ErrDuplicateName is returned when inserting a name that already exists.
// Uniqueness is case-insensitive; the stored value keeps its original casing.
var ErrDuplicateName = errors.New("fish name already exists")

// Fish represents a fish (product) reference record. It carries no business
// rules beyond name uniqueness; line items reference it by name.
type Fish struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// IFishTable defines the interface for fish storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name IFishTable --output mock_IFishTable.go
type IFishTable interface {
	// FindByName matches case-insensitively and returns (nil, nil) when
	// no fish exists with the name.
	FindByName(ctx context.Context, name string) (*Fish, error)
	Insert(ctx context.Context, name string) (*Fish, error)
	// List returns all fish ordered by name ascending.
	List(ctx context.Context) ([]*Fish, error)
	// Delete removes a fish reference. Historical line items keep the name;
	// nothing cascades. Returns sql.ErrNoRows when the id is unknown.
	Delete(ctx context.Context, id uuid.UUID) error
}
