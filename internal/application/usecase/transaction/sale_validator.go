// Package transaction contains cattle transaction-related use cases.
package transaction

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

// ValidateSale checks a prospective sale against a snapshot of the user's
// available batches and deduction pool. Rules run in order and the first
// failure is returned as a coded AllocationError naming the offending batch
// or field.
//
// The checks run against a snapshot, so a concurrent sale can still invalidate
// them before commit. CreateSaleWithAllocations re-verifies batch quantities
// inside the committing database transaction.
func ValidateSale(
	requests []valueobject.AllocationRequest,
	batches []valueobject.AvailableBatch,
	proposedDeduction decimal.Decimal,
	unaccountedInputCost decimal.Decimal,
	proposedTotalSalePrice decimal.Decimal,
) error {
	// Rule 1: at least one allocation, every quantity positive.
	if len(requests) == 0 {
		return domainerror.NewAllocationError(
			domainerror.ErrCodeNoAllocations,
			"at least one batch allocation is required",
			domainerror.ErrNoAllocations,
		)
	}

	for _, req := range requests {
		if req.Quantity <= 0 {
			return domainerror.NewBatchAllocationError(
				domainerror.ErrCodeInvalidAllocationQuantity,
				"allocation quantity must be a positive integer",
				req.BatchID.String(),
				domainerror.ErrInvalidAllocationQuantity,
			)
		}
	}

	batchByID := make(map[uuid.UUID]valueobject.AvailableBatch, len(batches))
	for _, b := range batches {
		batchByID[b.BatchID] = b
	}

	// Rule 2: requested quantities must fit within each batch's remaining
	// quantity. Requests against the same batch are summed first so two rows
	// of one submission cannot double-count the same head.
	requestedByBatch := make(map[uuid.UUID]int, len(requests))
	for _, req := range requests {
		if _, ok := batchByID[req.BatchID]; !ok {
			return domainerror.NewBatchAllocationError(
				domainerror.ErrCodeBatchNotFound,
				"batch not found",
				req.BatchID.String(),
				domainerror.ErrBatchNotFound,
			)
		}
		requestedByBatch[req.BatchID] += req.Quantity
	}

	for batchID, requested := range requestedByBatch {
		batch := batchByID[batchID]
		if requested > batch.RemainingQuantity {
			return domainerror.NewBatchAllocationError(
				domainerror.ErrCodeBatchOverAllocated,
				fmt.Sprintf("requested %d head but only %d remain in batch", requested, batch.RemainingQuantity),
				batchID.String(),
				domainerror.ErrBatchOverAllocated,
			)
		}
	}

	// Rule 4: the deduction is drawn from the shared unaccounted pool.
	if proposedDeduction.IsNegative() {
		return domainerror.NewFieldAllocationError(
			domainerror.ErrCodeInvalidDeduction,
			"input cost deduction must not be negative",
			"inputCostDeduction",
			domainerror.ErrInvalidDeduction,
		)
	}
	if proposedDeduction.GreaterThan(unaccountedInputCost) {
		return domainerror.NewFieldAllocationError(
			domainerror.ErrCodeDeductionExceedsPool,
			fmt.Sprintf("deduction %s exceeds unaccounted input costs %s", proposedDeduction.StringFixed(2), unaccountedInputCost.StringFixed(2)),
			"inputCostDeduction",
			domainerror.ErrDeductionExceedsPool,
		)
	}

	// Rule 5: the sale price is entered directly and must be positive.
	if !proposedTotalSalePrice.IsPositive() {
		return domainerror.NewFieldAllocationError(
			domainerror.ErrCodeInvalidSalePrice,
			"total sale price must be positive",
			"totalSalePrice",
			domainerror.ErrInvalidSalePrice,
		)
	}

	return nil
}

// SaleQuantity returns the total head count of a prospective sale, the sum of
// its allocation request quantities.
func SaleQuantity(requests []valueobject.AllocationRequest) int {
	total := 0
	for _, req := range requests {
		total += req.Quantity
	}
	return total
}
