// Package error defines domain-specific errors for the Herd Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidQuantity is returned when the head count is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidPricePerHead is returned when the price per head is negative.
	ErrInvalidPricePerHead = errors.New("price per head must not be negative")

	// ErrInvalidOccurredOn is returned when the transaction date is missing or invalid.
	ErrInvalidOccurredOn = errors.New("invalid transaction date")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrBreedTooLong is returned when the breed exceeds the maximum length.
	ErrBreedTooLong = errors.New("breed too long")

	// ErrPurchaseHasAllocations is returned when deleting a purchase that sales
	// have already been allocated against.
	ErrPurchaseHasAllocations = errors.New("purchase batch has sale allocations")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidQuantity        TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidPricePerHead    TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidOccurredOn      TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010005"
	ErrCodeNotAuthorizedTxn       TransactionErrorCode = "TXN-010006"
	ErrCodeNotesTooLong           TransactionErrorCode = "TXN-010007"
	ErrCodeBreedTooLong           TransactionErrorCode = "TXN-010008"
	ErrCodePurchaseHasAllocations TransactionErrorCode = "TXN-010009"

	// Internal errors (02XXXX)
	ErrCodeTxnInternalError TransactionErrorCode = "TXN-020001"
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
