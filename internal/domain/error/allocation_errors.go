// Package error defines domain-specific errors for the Herd Ledger application.
package error

import "errors"

// Allocation domain errors.
var (
	// ErrNoAllocations is returned when a sale is submitted without any batch allocations.
	ErrNoAllocations = errors.New("at least one batch allocation is required")

	// ErrInvalidAllocationQuantity is returned when an allocation quantity is zero or negative.
	ErrInvalidAllocationQuantity = errors.New("allocation quantity must be a positive integer")

	// ErrBatchNotFound is returned when an allocation references a batch that does not exist.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrBatchOverAllocated is returned when the requested quantity exceeds the
	// batch's remaining quantity.
	ErrBatchOverAllocated = errors.New("allocation exceeds remaining batch quantity")

	// ErrInvalidDeduction is returned when the proposed input-cost deduction is negative.
	ErrInvalidDeduction = errors.New("input cost deduction must not be negative")

	// ErrDeductionExceedsPool is returned when the proposed deduction exceeds the
	// unaccounted input-cost pool.
	ErrDeductionExceedsPool = errors.New("deduction exceeds unaccounted input costs")

	// ErrInvalidSalePrice is returned when the total sale price is zero or negative.
	ErrInvalidSalePrice = errors.New("total sale price must be positive")
)

// AllocationErrorCode defines error codes for allocation errors.
// Format: ALC-XXYYYY where XX is category and YYYY is specific error.
type AllocationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoAllocations             AllocationErrorCode = "ALC-010001"
	ErrCodeInvalidAllocationQuantity AllocationErrorCode = "ALC-010002"
	ErrCodeBatchNotFound             AllocationErrorCode = "ALC-010003"
	ErrCodeBatchOverAllocated        AllocationErrorCode = "ALC-010004"
	ErrCodeInvalidDeduction          AllocationErrorCode = "ALC-010005"
	ErrCodeDeductionExceedsPool      AllocationErrorCode = "ALC-010006"
	ErrCodeInvalidSalePrice          AllocationErrorCode = "ALC-010007"

	// Commit-time errors (02XXXX)
	ErrCodeAllocationConflict AllocationErrorCode = "ALC-020001"
)

// AllocationError represents an allocation validation error. BatchID and
// Field identify which batch or input triggered the failing rule, so callers
// can surface the error inline.
type AllocationError struct {
	Code    AllocationErrorCode
	Message string
	BatchID string
	Field   string
	Err     error
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AllocationError) Unwrap() error {
	return e.Err
}

// NewAllocationError creates a new AllocationError with the given code and message.
func NewAllocationError(code AllocationErrorCode, message string, err error) *AllocationError {
	return &AllocationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewBatchAllocationError creates an AllocationError tied to a specific batch.
func NewBatchAllocationError(code AllocationErrorCode, message, batchID string, err error) *AllocationError {
	return &AllocationError{
		Code:    code,
		Message: message,
		BatchID: batchID,
		Err:     err,
	}
}

// NewFieldAllocationError creates an AllocationError tied to a specific input field.
func NewFieldAllocationError(code AllocationErrorCode, message, field string, err error) *AllocationError {
	return &AllocationError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}
