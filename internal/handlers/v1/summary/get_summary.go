package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/logging"
)

// GetSummaryInput is the Huma input for a customer summary.
type GetSummaryInput struct {
	CustomerName string `path:"customerName" doc:"Customer name, matched ignoring case"`
}

// SummaryResponseBody is the response body for a customer summary. Amounts
// are carried both as integer paise and as formatted rupee strings.
type SummaryResponseBody struct {
	CustomerName        string `json:"customerName" doc:"Customer the summary is for"`
	TotalTransactions   int    `json:"totalTransactions" doc:"Number of bills folded in"`
	TotalCreditPaise    int64  `json:"totalCreditPaise" doc:"Sum of bill totals in paise"`
	TotalPaidPaise      int64  `json:"totalPaidPaise" doc:"Sum of payments in paise"`
	TotalRemainingPaise int64  `json:"totalRemainingPaise" doc:"Outstanding balance in paise"`
	TotalCredit         string `json:"totalCredit" doc:"Formatted sum of bill totals"`
	TotalPaid           string `json:"totalPaid" doc:"Formatted sum of payments"`
	TotalRemaining      string `json:"totalRemaining" doc:"Formatted outstanding balance"`
}

// GetSummaryOutput is the Huma output for a customer summary.
type GetSummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for building customer summaries.
type summarizer interface {
	Summarize(ctx context.Context, customerName string) (ledger.CustomerSummary, error)
}

// GetSummaryHandler handles GET /v1/summary/{customerName}.
type GetSummaryHandler struct {
	TransactionService summarizer
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc summarizer) *GetSummaryHandler {
	return &GetSummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-customer-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/{customerName}",
		Summary:     "Customer summary",
		Description: "Folds one customer's transactions into total credit, paid, and remaining amounts. Unknown customers yield an all-zero summary.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeMs")
	}
	result, err := h.TransactionService.Summarize(ctx, input.CustomerName)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize customer", err)
	}

	if logData != nil {
		logData.AddData("totalTransactions", result.TotalTransactions)
	}

	return &GetSummaryOutput{
		Body: SummaryResponseBody{
			CustomerName:        result.CustomerName,
			TotalTransactions:   result.TotalTransactions,
			TotalCreditPaise:    int64(result.TotalCreditPaise),
			TotalPaidPaise:      int64(result.TotalPaidPaise),
			TotalRemainingPaise: int64(result.TotalRemainingPaise),
			TotalCredit:         result.TotalCreditPaise.Format(),
			TotalPaid:           result.TotalPaidPaise.Format(),
			TotalRemaining:      result.TotalRemainingPaise.Format(),
		},
	}, nil
}
