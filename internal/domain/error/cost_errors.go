// Package error defines domain-specific errors for the Herd Ledger application.
package error

import "errors"

// Input cost domain errors.
var (
	// ErrCostNotFound is returned when an input cost is not found in the system.
	ErrCostNotFound = errors.New("input cost not found")

	// ErrNotAuthorizedToModifyCost is returned when user is not authorized to modify a cost.
	ErrNotAuthorizedToModifyCost = errors.New("not authorized to modify input cost")

	// ErrInvalidCostAmount is returned when the cost amount is zero or negative.
	ErrInvalidCostAmount = errors.New("cost amount must be positive")

	// ErrInvalidCostCategory is returned when the category is not a known cost category.
	ErrInvalidCostCategory = errors.New("invalid cost category")

	// ErrInvalidCostDate is returned when the cost date is missing or invalid.
	ErrInvalidCostDate = errors.New("invalid cost date")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrEmptyStatement is returned when an uploaded statement contains no rows.
	ErrEmptyStatement = errors.New("statement contains no rows")

	// ErrMalformedStatement is returned when a statement cannot be parsed.
	ErrMalformedStatement = errors.New("malformed statement")

	// ErrNoRowsSelected is returned when an import commit selects no rows.
	ErrNoRowsSelected = errors.New("no statement rows selected")
)

// CostErrorCode defines error codes for input cost errors.
// Format: CST-XXYYYY where XX is category and YYYY is specific error.
type CostErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCostAmount   CostErrorCode = "CST-010001"
	ErrCodeInvalidCostCategory CostErrorCode = "CST-010002"
	ErrCodeInvalidCostDate     CostErrorCode = "CST-010003"
	ErrCodeCostNotFound        CostErrorCode = "CST-010004"
	ErrCodeNotAuthorizedCost   CostErrorCode = "CST-010005"
	ErrCodeDescriptionTooLong  CostErrorCode = "CST-010006"

	// Statement import errors (02XXXX)
	ErrCodeEmptyStatement     CostErrorCode = "CST-020001"
	ErrCodeMalformedStatement CostErrorCode = "CST-020002"
	ErrCodeNoRowsSelected     CostErrorCode = "CST-020003"

	// Internal errors (03XXXX)
	ErrCodeCostInternalError CostErrorCode = "CST-030001"
)

// CostError represents an input cost error with code and message.
type CostError struct {
	Code    CostErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CostError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CostError) Unwrap() error {
	return e.Err
}

// NewCostError creates a new CostError with the given code and message.
func NewCostError(code CostErrorCode, message string, err error) *CostError {
	return &CostError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
