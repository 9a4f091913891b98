package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/operator/actions"
	"github.com/joy-trading/billing-server/internal/storage"
	"github.com/joy-trading/billing-server/internal/storage/fish"
)

// Fish represents a fish (product) reference in the service layer.
type Fish struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// FishService handles fish reference business logic.
type FishService struct {
	storage *storage.Storage
	proc    processor
}

// NewFishService creates a new FishService.
func NewFishService(store *storage.Storage, proc processor) *FishService {
	return &FishService{storage: store, proc: proc}
}

// ListFish returns all fish ordered by name.
func (s *FishService) ListFish(ctx context.Context) ([]Fish, error) {
	rows, err := s.storage.Fish.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Fish, len(rows))
	for i, row := range rows {
		converted[i] = fishFromStorage(row)
	}
	return converted, nil
}

// CreateFish registers a new fish name. Duplicate names surface
// fish.ErrDuplicateName.
func (s *FishService) CreateFish(ctx context.Context, name string) (Fish, error) {
	action := &actions.CreateFish{Name: name}
	if err := s.proc.Process(ctx, action); err != nil {
		return Fish{}, err
	}
	return fishFromStorage(action.Created), nil
}

// DeleteFish removes a fish reference; historical line items are untouched.
func (s *FishService) DeleteFish(ctx context.Context, id uuid.UUID) error {
	return s.proc.Process(ctx, &actions.DeleteFish{ID: id})
}

func fishFromStorage(row *fish.Fish) Fish {
	return Fish{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
