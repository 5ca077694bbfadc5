package costimport

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

// ImportRow is one user-confirmed statement row to commit as an input cost.
// The client sends back the parsed values with any category edits applied.
type ImportRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    entity.CostCategory
}

// CommitImportInput represents the input for committing a statement import.
type CommitImportInput struct {
	UserID uuid.UUID
	Rows   []ImportRow
}

// CommitImportOutput represents the output of committing a statement import.
type CommitImportOutput struct {
	ImportedCount int
}

// CommitImportUseCase inserts the selected statement rows as input costs in
// one database transaction.
type CommitImportUseCase struct {
	costRepo adapter.CostRepository
}

// NewCommitImportUseCase creates a new CommitImportUseCase instance.
func NewCommitImportUseCase(costRepo adapter.CostRepository) *CommitImportUseCase {
	return &CommitImportUseCase{costRepo: costRepo}
}

// Execute validates and inserts the selected rows. All rows are inserted or
// none are.
func (uc *CommitImportUseCase) Execute(ctx context.Context, input CommitImportInput) (*CommitImportOutput, error) {
	if len(input.Rows) == 0 {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeNoRowsSelected,
			"no statement rows selected",
			domainerror.ErrNoRowsSelected,
		)
	}

	costs := make([]*entity.InputCost, 0, len(input.Rows))
	for i, row := range input.Rows {
		if !row.Amount.IsPositive() {
			return nil, domainerror.NewCostError(
				domainerror.ErrCodeInvalidCostAmount,
				fmt.Sprintf("row %d: cost amount must be positive", i),
				domainerror.ErrInvalidCostAmount,
			)
		}
		if !row.Category.IsValid() {
			return nil, domainerror.NewCostError(
				domainerror.ErrCodeInvalidCostCategory,
				fmt.Sprintf("row %d: unknown cost category %q", i, row.Category),
				domainerror.ErrInvalidCostCategory,
			)
		}
		if row.Date.IsZero() {
			return nil, domainerror.NewCostError(
				domainerror.ErrCodeInvalidCostDate,
				fmt.Sprintf("row %d: cost date is required", i),
				domainerror.ErrInvalidCostDate,
			)
		}

		costs = append(costs, entity.NewInputCost(input.UserID, row.Category, row.Amount, row.Date, row.Description))
	}

	if err := uc.costRepo.CreateBatch(ctx, costs); err != nil {
		return nil, fmt.Errorf("failed to commit statement import: %w", err)
	}

	return &CommitImportOutput{ImportedCount: len(costs)}, nil
}
