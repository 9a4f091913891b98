package actions

import (
	"context"

	"github.com/joy-trading/billing-server/internal/storage"
	"github.com/joy-trading/billing-server/internal/storage/fish"
)

// CreateFish registers a fish name. A duplicate surfaces ErrDuplicateName.
type CreateFish struct {
	Name string

	Created *fish.Fish

	IAction
}

func (c *CreateFish) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Fish.Insert(ctx, c.Name)
	if err != nil {
		return err
	}

	c.Created = created
	return nil
}
