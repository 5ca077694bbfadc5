package adapter

import (
	"context"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// CategorySuggestion pairs a statement row index with a suggested cost category.
type CategorySuggestion struct {
	RowIndex int
	Category entity.CostCategory
}

// StatementRow is a parsed row of a bank statement used for suggestions.
type StatementRow struct {
	RowIndex    int
	Description string
	Amount      string
}

// CategorySuggester suggests cost categories for imported statement rows.
type CategorySuggester interface {
	// IsAvailable reports whether the suggester is configured and usable.
	IsAvailable() bool

	// Suggest returns category suggestions for the given rows. Rows the
	// suggester cannot classify are omitted from the result.
	Suggest(ctx context.Context, rows []StatementRow) ([]CategorySuggestion, error)
}
