package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
)

const (
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
	// MaxBreedLength is the maximum allowed length for the breed field.
	MaxBreedLength = 100
)

// CreatePurchaseInput represents the input for recording a cattle purchase.
type CreatePurchaseInput struct {
	UserID          uuid.UUID
	Quantity        int
	PricePerHead    decimal.Decimal
	Breed           string
	AverageWeightKg *decimal.Decimal
	OccurredOn      time.Time
	Notes           string
}

// CreatePurchaseOutput represents the output of recording a cattle purchase.
type CreatePurchaseOutput struct {
	Transaction *TransactionOutput
}

// CreatePurchaseUseCase handles cattle purchase creation. Each purchase opens
// a new batch that later sales are allocated against.
type CreatePurchaseUseCase struct {
	transactionRepo adapter.TransactionRepository
	batchCache      adapter.BatchCache
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(
	transactionRepo adapter.TransactionRepository,
	batchCache adapter.BatchCache,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		transactionRepo: transactionRepo,
		batchCache:      batchCache,
	}
}

// Execute records the purchase. The total amount is always derived from
// quantity and price per head.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, input CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be a positive integer",
			domainerror.ErrInvalidQuantity,
		)
	}

	if input.PricePerHead.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPricePerHead,
			"price per head must not be negative",
			domainerror.ErrInvalidPricePerHead,
		)
	}

	if input.OccurredOn.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidOccurredOn,
			"transaction date is required",
			domainerror.ErrInvalidOccurredOn,
		)
	}

	if len(input.Breed) > MaxBreedLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeBreedTooLong,
			fmt.Sprintf("breed must not exceed %d characters", MaxBreedLength),
			domainerror.ErrBreedTooLong,
		)
	}

	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	purchase := entity.NewPurchase(
		input.UserID,
		input.Quantity,
		input.PricePerHead,
		input.Breed,
		input.AverageWeightKg,
		input.OccurredOn,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	invalidateBatchCache(ctx, uc.batchCache, input.UserID)

	return &CreatePurchaseOutput{Transaction: toTransactionOutput(purchase)}, nil
}
