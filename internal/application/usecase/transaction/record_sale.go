package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/application/usecase/batch"
	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

// RecordSaleInput represents the input for recording a cattle sale.
type RecordSaleInput struct {
	UserID             uuid.UUID
	Allocations        []valueobject.AllocationRequest
	TotalSalePrice     decimal.Decimal
	InputCostDeduction decimal.Decimal
	OccurredOn         time.Time
	Notes              string
}

// RecordSaleOutput represents the output of recording a cattle sale.
type RecordSaleOutput struct {
	Transaction *TransactionOutput
}

// RecordSaleUseCase handles sale creation: it validates the allocation
// requests against a snapshot of the ledger, snapshots each batch's cost per
// head, and commits the sale with its allocations atomically.
type RecordSaleUseCase struct {
	transactionRepo adapter.TransactionRepository
	allocationRepo  adapter.AllocationRepository
	costRepo        adapter.CostRepository
	batchCache      adapter.BatchCache
}

// NewRecordSaleUseCase creates a new RecordSaleUseCase instance.
func NewRecordSaleUseCase(
	transactionRepo adapter.TransactionRepository,
	allocationRepo adapter.AllocationRepository,
	costRepo adapter.CostRepository,
	batchCache adapter.BatchCache,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		transactionRepo: transactionRepo,
		allocationRepo:  allocationRepo,
		costRepo:        costRepo,
		batchCache:      batchCache,
	}
}

// Execute records the sale. Validation runs against a snapshot; the
// repository re-verifies batch quantities inside the committing transaction,
// so a concurrent sale against the same batch surfaces as
// domainerror.ErrBatchOverAllocated rather than an over-allocated ledger.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input RecordSaleInput) (*RecordSaleOutput, error) {
	if input.OccurredOn.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidOccurredOn,
			"transaction date is required",
			domainerror.ErrInvalidOccurredOn,
		)
	}

	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	// Snapshot the ledger: available batches and the deduction pool.
	purchases, err := uc.transactionRepo.FindPurchases(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	allocations, err := uc.allocationRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	batches := batch.ComputeAvailableBatches(purchases, allocations)

	costTotal, err := uc.costRepo.SumAmounts(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum input costs: %w", err)
	}

	deducted, err := uc.transactionRepo.SumDeductions(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum deductions: %w", err)
	}

	unaccounted := costTotal.Sub(deducted)

	if err := ValidateSale(input.Allocations, batches, input.InputCostDeduction, unaccounted, input.TotalSalePrice); err != nil {
		return nil, err
	}

	sale := entity.NewSale(
		input.UserID,
		SaleQuantity(input.Allocations),
		input.TotalSalePrice,
		input.InputCostDeduction,
		input.OccurredOn,
		input.Notes,
	)

	batchByID := make(map[uuid.UUID]valueobject.AvailableBatch, len(batches))
	for _, b := range batches {
		batchByID[b.BatchID] = b
	}

	// Snapshot cost_per_head from each batch now. The allocation rows keep
	// this value even if the purchase row changes later.
	saleAllocations := make([]*entity.BatchAllocation, 0, len(input.Allocations))
	for _, req := range input.Allocations {
		saleAllocations = append(saleAllocations, entity.NewBatchAllocation(
			input.UserID,
			sale.ID,
			req.BatchID,
			req.Quantity,
			batchByID[req.BatchID].PricePerHead,
		))
	}

	if err := uc.transactionRepo.CreateSaleWithAllocations(ctx, sale, saleAllocations); err != nil {
		return nil, err
	}

	invalidateBatchCache(ctx, uc.batchCache, input.UserID)

	output := toTransactionOutput(sale)
	output.Allocations = make([]*AllocationOutput, 0, len(saleAllocations))
	for _, alloc := range saleAllocations {
		output.Allocations = append(output.Allocations, toAllocationOutput(alloc))
	}

	return &RecordSaleOutput{Transaction: output}, nil
}

// invalidateBatchCache drops the user's cached batch projection after a write.
// Cache failures are logged and ignored.
func invalidateBatchCache(ctx context.Context, cache adapter.BatchCache, userID uuid.UUID) {
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Debug("Batch cache invalidation failed",
			"userID", userID,
			"error", err,
		)
	}
}
