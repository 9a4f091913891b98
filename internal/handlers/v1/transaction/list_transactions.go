package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/logging"
)

// ListTransactionsInput is the Huma input for listing all transactions.
type ListTransactionsInput struct{}

// ListCustomerTransactionsInput is the Huma input for listing one
// customer's transactions.
type ListCustomerTransactionsInput struct {
	CustomerName string `path:"customerName" doc:"Customer name, matched ignoring case"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, customerName *string) ([]*ledger.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions and
// GET /v1/transactions/customer/{customerName}.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transaction endpoints with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns all transactions newest first.",
		Tags:        []string{"Transactions"},
	}, h.handleAll)

	huma.Register(api, huma.Operation{
		OperationID: "list-customer-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/customer/{customerName}",
		Summary:     "List a customer's transactions",
		Description: "Returns one customer's transactions newest first. Unknown customers yield an empty list.",
		Tags:        []string{"Transactions"},
	}, h.handleByCustomer)
}

func (h *ListTransactionsHandler) handleAll(ctx context.Context, _ *ListTransactionsInput) (*ListTransactionsOutput, error) {
	return h.list(ctx, nil)
}

func (h *ListTransactionsHandler) handleByCustomer(ctx context.Context, input *ListCustomerTransactionsInput) (*ListTransactionsOutput, error) {
	return h.list(ctx, &input.CustomerName)
}

func (h *ListTransactionsHandler) list(ctx context.Context, customerName *string) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, customerName)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = fromLedger(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
