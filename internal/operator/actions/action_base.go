package actions

import (
	"context"

	"github.com/joy-trading/billing-server/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a storage
// transaction owned by the operator; returning an error rolls it back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
