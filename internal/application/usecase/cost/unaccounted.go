package cost

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/application/adapter"
)

// GetUnaccountedInput represents the input for the unaccounted pool query.
type GetUnaccountedInput struct {
	UserID uuid.UUID
}

// GetUnaccountedOutput represents the output of the unaccounted pool query.
type GetUnaccountedOutput struct {
	// TotalCosts is the sum of every input cost ever recorded.
	TotalCosts decimal.Decimal
	// TotalDeducted is the sum of input_cost_deduction across all sales.
	TotalDeducted decimal.Decimal
	// Unaccounted is the pool still available for deduction at sale time.
	Unaccounted decimal.Decimal
}

// GetUnaccountedUseCase computes the shared pool of operating costs not yet
// attributed to any sale. Both sums run over full history, not a date range.
type GetUnaccountedUseCase struct {
	costRepo        adapter.CostRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetUnaccountedUseCase creates a new GetUnaccountedUseCase instance.
func NewGetUnaccountedUseCase(
	costRepo adapter.CostRepository,
	transactionRepo adapter.TransactionRepository,
) *GetUnaccountedUseCase {
	return &GetUnaccountedUseCase{
		costRepo:        costRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the unaccounted input cost pool.
func (uc *GetUnaccountedUseCase) Execute(ctx context.Context, input GetUnaccountedInput) (*GetUnaccountedOutput, error) {
	totalCosts, err := uc.costRepo.SumAmounts(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum input costs: %w", err)
	}

	totalDeducted, err := uc.transactionRepo.SumDeductions(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum deductions: %w", err)
	}

	return &GetUnaccountedOutput{
		TotalCosts:    totalCosts,
		TotalDeducted: totalDeducted,
		Unaccounted:   totalCosts.Sub(totalDeducted),
	}, nil
}
