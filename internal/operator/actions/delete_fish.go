package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/storage"
)

// DeleteFish removes a fish reference. Historical line items keep the name.
type DeleteFish struct {
	ID uuid.UUID

	IAction
}

func (d *DeleteFish) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Fish.Delete(ctx, d.ID)
}
