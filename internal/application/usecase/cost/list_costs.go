package cost

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/entity"
)

// ListCostsInput represents the input for listing input costs.
type ListCostsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  *entity.CostCategory
}

// ListCostsOutput represents the output of listing input costs.
type ListCostsOutput struct {
	Costs []*CostOutput
}

// ListCostsUseCase handles input cost listing with filters.
type ListCostsUseCase struct {
	costRepo adapter.CostRepository
}

// NewListCostsUseCase creates a new ListCostsUseCase instance.
func NewListCostsUseCase(costRepo adapter.CostRepository) *ListCostsUseCase {
	return &ListCostsUseCase{costRepo: costRepo}
}

// Execute lists the user's input costs, newest first.
func (uc *ListCostsUseCase) Execute(ctx context.Context, input ListCostsInput) (*ListCostsOutput, error) {
	costs, err := uc.costRepo.FindByFilter(ctx, adapter.CostFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list input costs: %w", err)
	}

	output := &ListCostsOutput{Costs: make([]*CostOutput, 0, len(costs))}
	for _, c := range costs {
		output.Costs = append(output.Costs, toCostOutput(c))
	}

	return output, nil
}
