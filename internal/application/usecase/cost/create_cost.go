// Package cost contains input cost-related use cases.
package cost

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

// MaxDescriptionLength is the maximum allowed length for cost descriptions.
const MaxDescriptionLength = 255

// CreateCostInput represents the input for recording an input cost.
type CreateCostInput struct {
	UserID      uuid.UUID
	Category    entity.CostCategory
	Amount      decimal.Decimal
	OccurredOn  time.Time
	Description string
}

// CreateCostOutput represents the output of recording an input cost.
type CreateCostOutput struct {
	Cost *CostOutput
}

// CreateCostUseCase handles input cost creation.
type CreateCostUseCase struct {
	costRepo adapter.CostRepository
}

// NewCreateCostUseCase creates a new CreateCostUseCase instance.
func NewCreateCostUseCase(costRepo adapter.CostRepository) *CreateCostUseCase {
	return &CreateCostUseCase{costRepo: costRepo}
}

// Execute records the input cost.
func (uc *CreateCostUseCase) Execute(ctx context.Context, input CreateCostInput) (*CreateCostOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeInvalidCostAmount,
			"cost amount must be positive",
			domainerror.ErrInvalidCostAmount,
		)
	}

	if !input.Category.IsValid() {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeInvalidCostCategory,
			fmt.Sprintf("unknown cost category %q", input.Category),
			domainerror.ErrInvalidCostCategory,
		)
	}

	if input.OccurredOn.IsZero() {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeInvalidCostDate,
			"cost date is required",
			domainerror.ErrInvalidCostDate,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	cost := entity.NewInputCost(input.UserID, input.Category, input.Amount, input.OccurredOn, input.Description)

	if err := uc.costRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to create input cost: %w", err)
	}

	return &CreateCostOutput{Cost: toCostOutput(cost)}, nil
}
