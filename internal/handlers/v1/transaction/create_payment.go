package transaction

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/logging"
	"github.com/joy-trading/billing-server/internal/money"
)

// CreatePaymentBody is the request body for recording a payment.
type CreatePaymentBody struct {
	AmountPaise int64  `json:"amountPaise" doc:"Payment amount in paise, must be positive and at most the outstanding balance"`
	Note        string `json:"note,omitempty" doc:"Optional payment note"`
}

// CreatePaymentInput is the Huma input for recording a payment.
type CreatePaymentInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body CreatePaymentBody
}

// CreatePaymentOutput is the Huma output for recording a payment.
type CreatePaymentOutput struct {
	Body Transaction
}

// paymentApplier is the interface for applying payments.
type paymentApplier interface {
	ApplyPayment(ctx context.Context, id uuid.UUID, amount money.Money, note string) (*ledger.Transaction, error)
}

// CreatePaymentHandler handles POST /v1/transactions/{id}/payment.
type CreatePaymentHandler struct {
	TransactionService paymentApplier
}

// NewCreatePaymentHandler creates a new CreatePaymentHandler.
func NewCreatePaymentHandler(svc paymentApplier) *CreatePaymentHandler {
	return &CreatePaymentHandler{TransactionService: svc}
}

// Register registers the create payment endpoint with the Huma API.
func (h *CreatePaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-payment",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/{id}/payment",
		Summary:     "Record a payment",
		Description: "Records a partial or settling payment against a transaction and returns the updated state.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreatePaymentHandler) handle(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("applyPaymentMs")
	}
	updated, err := h.TransactionService.ApplyPayment(ctx, id, money.Money(input.Body.AmountPaise), input.Body.Note)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNonPositivePayment):
			return nil, huma.NewError(http.StatusBadRequest, "payment amount must be positive", err)
		case errors.Is(err, ledger.ErrOverpayment):
			return nil, huma.NewError(http.StatusBadRequest, "payment exceeds outstanding balance", err)
		case errors.Is(err, sql.ErrNoRows):
			return nil, huma.NewError(http.StatusNotFound, "transaction not found", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record payment", err)
	}

	if logData != nil {
		logData.AddData("transactionID", updated.ID.String())
		logData.AddData("remainingPaise", int64(updated.RemainingPaise))
	}

	return &CreatePaymentOutput{Body: fromLedger(updated)}, nil
}
