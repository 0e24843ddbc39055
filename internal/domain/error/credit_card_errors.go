package error

import "errors"

// Credit card domain errors.
var (
	// ErrCreditCardNotFound is returned when a credit card is not found in the system.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrInvalidClosingDay is returned when the closing day is outside 1-31.
	ErrInvalidClosingDay = errors.New("closing day must be between 1 and 31")

	// ErrInvalidDueDay is returned when the due day is outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrNegativeCardLimit is returned when the card limit is negative.
	ErrNegativeCardLimit = errors.New("card limit cannot be negative")

	// ErrInvoiceNotFound is returned when no open invoice exists for the
	// requested card and due date.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceAlreadySettled is returned when attempting to settle an
	// invoice with no outstanding balance.
	ErrInvoiceAlreadySettled = errors.New("invoice has no outstanding balance")
)

// CreditCardErrorCode defines error codes for credit card errors.
// Format: CARD-XXYYYY where XX is category and YYYY is specific error.
type CreditCardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidClosingDay     CreditCardErrorCode = "CARD-010001"
	ErrCodeInvalidDueDay         CreditCardErrorCode = "CARD-010002"
	ErrCodeNegativeCardLimit     CreditCardErrorCode = "CARD-010003"
	ErrCodeCreditCardNotFound    CreditCardErrorCode = "CARD-010004"
	ErrCodeInvoiceNotFound       CreditCardErrorCode = "CARD-010005"
	ErrCodeInvoiceAlreadySettled CreditCardErrorCode = "CARD-010006"
	ErrCodeMissingCardFields     CreditCardErrorCode = "CARD-010007"
)

// CreditCardError represents a credit card error with code and message.
type CreditCardError struct {
	Code    CreditCardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CreditCardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CreditCardError) Unwrap() error {
	return e.Err
}

// NewCreditCardError creates a new CreditCardError with the given code and message.
func NewCreditCardError(code CreditCardErrorCode, message string, err error) *CreditCardError {
	return &CreditCardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
