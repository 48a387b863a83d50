package loans

import "errors"

// Sentinel errors for the engine's failure modes. Callers classify them with
// errors.Is or ErrorKind; wrapped variants carry the offending values.
var (
	// ErrInvalidInput indicates bad loan-creation or quote parameters.
	ErrInvalidInput = errors.New("invalid loan parameters")

	// ErrInvalidAmount indicates a non-positive or non-finite payment amount.
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrNoLoanLoaded indicates an operation before a loan was created.
	ErrNoLoanLoaded = errors.New("no loan loaded")

	// ErrLoanFullyPaid indicates a payment against a schedule with no
	// remaining upcoming installments.
	ErrLoanFullyPaid = errors.New("loan has been fully paid")
)

// Kind is a stable, serializable error classification.
type Kind string

const (
	KindInvalidInput  Kind = "InvalidInput"
	KindInvalidAmount Kind = "InvalidAmount"
	KindNoLoanLoaded  Kind = "NoLoanLoaded"
	KindLoanFullyPaid Kind = "LoanFullyPaid"
	KindUnknown       Kind = "Unknown"
)

// ErrorKind maps an engine error to its stable kind.
func ErrorKind(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrInvalidAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrNoLoanLoaded):
		return KindNoLoanLoaded
	case errors.Is(err, ErrLoanFullyPaid):
		return KindLoanFullyPaid
	default:
		return KindUnknown
	}
}
