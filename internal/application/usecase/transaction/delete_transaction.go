package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/application/adapter"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion. Deleting a sale also
// removes its allocations, which returns the allocated head to their batches.
// Deleting a purchase is rejected while any sale allocation references it.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	allocationRepo  adapter.AllocationRepository
	batchCache      adapter.BatchCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	allocationRepo adapter.AllocationRepository,
	batchCache adapter.BatchCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		allocationRepo:  allocationRepo,
		batchCache:      batchCache,
	}
}

// Execute deletes the transaction after verifying ownership.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.UserID != input.UserID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTxn,
			"not authorized to delete this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if transaction.IsBuy() {
		allocated, err := uc.allocationRepo.ExistsByPurchase(ctx, transaction.ID)
		if err != nil {
			return fmt.Errorf("failed to check batch allocations: %w", err)
		}
		if allocated {
			return domainerror.NewTransactionError(
				domainerror.ErrCodePurchaseHasAllocations,
				"cannot delete a purchase that sales have been allocated against",
				domainerror.ErrPurchaseHasAllocations,
			)
		}
	}

	if err := uc.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	invalidateBatchCache(ctx, uc.batchCache, input.UserID)

	return nil
}
