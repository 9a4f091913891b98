package fish

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joy-trading/billing-server/internal/logging"
	"github.com/joy-trading/billing-server/internal/service"
)

// ListFishInput is the Huma input for listing fish.
type ListFishInput struct{}

// ListFishResponseBody is the response body for listing fish.
type ListFishResponseBody struct {
	Fish []Fish `json:"fish" doc:"All fish names ordered by name"`
}

// ListFishOutput is the Huma output for listing fish.
type ListFishOutput struct {
	Body ListFishResponseBody
}

// fishLister is the interface for listing fish.
type fishLister interface {
	ListFish(ctx context.Context) ([]service.Fish, error)
}

// ListFishHandler handles GET /v1/fish.
type ListFishHandler struct {
	FishService fishLister
}

// NewListFishHandler creates a new ListFishHandler.
func NewListFishHandler(svc fishLister) *ListFishHandler {
	return &ListFishHandler{FishService: svc}
}

// Register registers the list fish endpoint with the Huma API.
func (h *ListFishHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-fish",
		Method:      http.MethodGet,
		Path:        "/v1/fish",
		Summary:     "List fish",
		Description: "Returns all fish names ordered by name.",
		Tags:        []string{"Fish"},
	}, h.handle)
}

func (h *ListFishHandler) handle(ctx context.Context, _ *ListFishInput) (*ListFishOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listFishMs")
	}
	rows, err := h.FishService.ListFish(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list fish", err)
	}

	if logData != nil {
		logData.AddData("fishCount", len(rows))
	}

	resp := ListFishResponseBody{
		Fish: make([]Fish, len(rows)),
	}
	for i, f := range rows {
		resp.Fish[i] = Fish{
			ID:        f.ID.String(),
			Name:      f.Name,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListFishOutput{Body: resp}, nil
}
