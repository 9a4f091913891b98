package ledger

import "errors"

var (
	// ErrNonPositivePayment rejects payments of zero or less.
	ErrNonPositivePayment = errors.New("payment amount must be positive")

	// ErrOverpayment rejects payments larger than the remaining balance.
	ErrOverpayment = errors.New("payment exceeds remaining balance")
)

// ValidationError reports rejected bill input: a blank customer name or an
// empty item list. The transaction is never partially written.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid bill: " + e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
