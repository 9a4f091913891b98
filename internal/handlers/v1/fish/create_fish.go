package fish

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joy-trading/billing-server/internal/logging"
	"github.com/joy-trading/billing-server/internal/service"
	"github.com/joy-trading/billing-server/internal/storage/fish"
)

// CreateFishBody is the request body for creating a fish name.
type CreateFishBody struct {
	Name string `json:"name" minLength:"1" doc:"Fish name, unique ignoring case"`
}

// CreateFishInput is the Huma input for creating a fish name.
type CreateFishInput struct {
	Body CreateFishBody
}

// CreateFishOutput is the Huma output for creating a fish name.
type CreateFishOutput struct {
	Status int
	Body   Fish
}

// fishCreator is the interface for creating fish names.
type fishCreator interface {
	CreateFish(ctx context.Context, name string) (service.Fish, error)
}

// CreateFishHandler handles POST /v1/fish.
type CreateFishHandler struct {
	FishService fishCreator
}

// NewCreateFishHandler creates a new CreateFishHandler.
func NewCreateFishHandler(svc fishCreator) *CreateFishHandler {
	return &CreateFishHandler{FishService: svc}
}

// Register registers the create fish endpoint with the Huma API.
func (h *CreateFishHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-fish",
		Method:      http.MethodPost,
		Path:        "/v1/fish",
		Summary:     "Create a fish name",
		Description: "Registers a new fish name. Names are unique ignoring case.",
		Tags:        []string{"Fish"},
	}, h.handle)
}

func (h *CreateFishHandler) handle(ctx context.Context, input *CreateFishInput) (*CreateFishOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createFishMs")
	}
	created, err := h.FishService.CreateFish(ctx, input.Body.Name)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, fish.ErrDuplicateName) {
			return nil, huma.NewError(http.StatusConflict, "fish already exists", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create fish", err)
	}

	if logData != nil {
		logData.AddData("fishID", created.ID.String())
	}

	return &CreateFishOutput{
		Status: http.StatusCreated,
		Body: Fish{
			ID:        created.ID.String(),
			Name:      created.Name,
			CreatedAt: created.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}
