package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/logging"
)

// CreateTransactionEntry is one raw bill line as entered. Boxes and
// costPerBox are decimal strings; parsing and totalling happen server side.
type CreateTransactionEntry struct {
	FishName   string `json:"fishName" doc:"Fish name, registered if new"`
	Boxes      string `json:"boxes" doc:"Quantity as a decimal string"`
	CostPerBox string `json:"costPerBox" doc:"Unit price as a decimal string"`
}

// CreateTransactionBody is the request body for creating a bill.
type CreateTransactionBody struct {
	CustomerName string                   `json:"customerName" minLength:"1" doc:"Customer name, registered if new"`
	Items        []CreateTransactionEntry `json:"items" doc:"Bill lines; incomplete lines are dropped"`
}

// CreateTransactionInput is the Huma input for creating a bill.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a bill.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// billCreator is the interface for creating bills.
type billCreator interface {
	CreateBill(ctx context.Context, customerName string, entries []ledger.LineEntry) (*ledger.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService billCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc billCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transactions",
		Summary:     "Create a bill",
		Description: "Creates a customer bill from raw line entries. New customer and fish names are registered along the way.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	entries := make([]ledger.LineEntry, len(input.Body.Items))
	for i, item := range input.Body.Items {
		entries[i] = ledger.LineEntry{
			FishName:   item.FishName,
			Boxes:      item.Boxes,
			CostPerBox: item.CostPerBox,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBillMs")
	}
	bill, err := h.TransactionService.CreateBill(ctx, input.Body.CustomerName, entries)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if ledger.IsValidation(err) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create bill", err)
	}

	if logData != nil {
		logData.AddData("transactionID", bill.ID.String())
		logData.AddData("totalPaise", int64(bill.TotalPaise))
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromLedger(bill),
	}, nil
}
