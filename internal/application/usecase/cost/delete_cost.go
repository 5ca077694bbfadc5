package cost

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/application/adapter"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
)

// DeleteCostInput represents the input for deleting an input cost.
type DeleteCostInput struct {
	UserID uuid.UUID
	CostID uuid.UUID
}

// DeleteCostUseCase handles input cost deletion.
//
// Deleting a cost shrinks the unaccounted pool retroactively; existing sale
// deductions are kept as recorded, so the pool can go negative afterwards.
// That matches the ledger-of-record semantics: deductions are historical
// facts, not references into specific cost rows.
type DeleteCostUseCase struct {
	costRepo adapter.CostRepository
}

// NewDeleteCostUseCase creates a new DeleteCostUseCase instance.
func NewDeleteCostUseCase(costRepo adapter.CostRepository) *DeleteCostUseCase {
	return &DeleteCostUseCase{costRepo: costRepo}
}

// Execute deletes the input cost after verifying ownership.
func (uc *DeleteCostUseCase) Execute(ctx context.Context, input DeleteCostInput) error {
	cost, err := uc.costRepo.FindByID(ctx, input.CostID)
	if err != nil {
		return domainerror.NewCostError(
			domainerror.ErrCodeCostNotFound,
			"input cost not found",
			domainerror.ErrCostNotFound,
		)
	}

	if cost.UserID != input.UserID {
		return domainerror.NewCostError(
			domainerror.ErrCodeNotAuthorizedCost,
			"not authorized to delete this input cost",
			domainerror.ErrNotAuthorizedToModifyCost,
		)
	}

	if err := uc.costRepo.Delete(ctx, cost.ID); err != nil {
		return fmt.Errorf("failed to delete input cost: %w", err)
	}

	return nil
}
