// Package error defines domain-specific errors for the Gestor backend.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrNegativeTransactionAmount is returned when the transaction amount is negative.
	ErrNegativeTransactionAmount = errors.New("transaction amount cannot be negative")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrVirtualTransactionReadOnly is returned when a caller tries to write a
	// synthesized invoice entry as if it were a stored transaction.
	ErrVirtualTransactionReadOnly = errors.New("virtual invoice entries cannot be modified directly")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType     TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate     TransactionErrorCode = "TXN-010002"
	ErrCodeNegativeAmount             TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound        TransactionErrorCode = "TXN-010004"
	ErrCodeDescriptionTooLong         TransactionErrorCode = "TXN-010005"
	ErrCodeVirtualTransactionReadOnly TransactionErrorCode = "TXN-010006"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
