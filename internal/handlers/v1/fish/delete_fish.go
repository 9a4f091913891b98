package fish

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/logging"
)

// DeleteFishInput is the Huma input for deleting a fish name.
type DeleteFishInput struct {
	ID string `path:"id" format:"uuid" doc:"Fish UUID"`
}

// DeleteFishOutput is the Huma output for deleting a fish name.
type DeleteFishOutput struct {
	Status int
}

// fishDeleter is the interface for deleting fish names.
type fishDeleter interface {
	DeleteFish(ctx context.Context, id uuid.UUID) error
}

// DeleteFishHandler handles DELETE /v1/fish/{id}.
type DeleteFishHandler struct {
	FishService fishDeleter
}

// NewDeleteFishHandler creates a new DeleteFishHandler.
func NewDeleteFishHandler(svc fishDeleter) *DeleteFishHandler {
	return &DeleteFishHandler{FishService: svc}
}

// Register registers the delete fish endpoint with the Huma API.
func (h *DeleteFishHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-fish",
		Method:      http.MethodDelete,
		Path:        "/v1/fish/{id}",
		Summary:     "Delete a fish name",
		Description: "Removes a fish name. Line items on existing bills keep their copied name.",
		Tags:        []string{"Fish"},
	}, h.handle)
}

func (h *DeleteFishHandler) handle(ctx context.Context, input *DeleteFishInput) (*DeleteFishOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid fish id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteFishMs")
	}
	err = h.FishService.DeleteFish(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "fish not found", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete fish", err)
	}

	return &DeleteFishOutput{Status: http.StatusNoContent}, nil
}
