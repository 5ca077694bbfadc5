package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

// ListAvailableBatchesInput represents the input for listing available batches.
type ListAvailableBatchesInput struct {
	UserID uuid.UUID
	// OnlySelectable excludes fully sold batches from the result. Sale forms
	// set this; the batch overview screen does not.
	OnlySelectable bool
}

// ListAvailableBatchesOutput represents the output of listing available batches.
type ListAvailableBatchesOutput struct {
	Batches []valueobject.AvailableBatch
}

// ListAvailableBatchesUseCase computes the available-batch projection for a
// user, with a per-user cache in front of the ledger reads.
type ListAvailableBatchesUseCase struct {
	transactionRepo adapter.TransactionRepository
	allocationRepo  adapter.AllocationRepository
	batchCache      adapter.BatchCache
}

// NewListAvailableBatchesUseCase creates a new ListAvailableBatchesUseCase instance.
func NewListAvailableBatchesUseCase(
	transactionRepo adapter.TransactionRepository,
	allocationRepo adapter.AllocationRepository,
	batchCache adapter.BatchCache,
) *ListAvailableBatchesUseCase {
	return &ListAvailableBatchesUseCase{
		transactionRepo: transactionRepo,
		allocationRepo:  allocationRepo,
		batchCache:      batchCache,
	}
}

// Execute computes the available batches for the user. Cache failures are
// logged and ignored; the projection is always served.
func (uc *ListAvailableBatchesUseCase) Execute(ctx context.Context, input ListAvailableBatchesInput) (*ListAvailableBatchesOutput, error) {
	batches, err := uc.batchCache.Get(ctx, input.UserID)
	if err != nil {
		slog.Debug("Batch cache read failed, falling back to ledger",
			"userID", input.UserID,
			"error", err,
		)
		batches = nil
	}

	if batches == nil {
		purchases, err := uc.transactionRepo.FindPurchases(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load purchases: %w", err)
		}

		allocations, err := uc.allocationRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load allocations: %w", err)
		}

		batches = ComputeAvailableBatches(purchases, allocations)

		if err := uc.batchCache.Set(ctx, input.UserID, batches); err != nil {
			slog.Debug("Batch cache write failed",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	if input.OnlySelectable {
		selectable := make([]valueobject.AvailableBatch, 0, len(batches))
		for _, b := range batches {
			if b.IsSelectable() {
				selectable = append(selectable, b)
			}
		}
		batches = selectable
	}

	return &ListAvailableBatchesOutput{Batches: batches}, nil
}
