package costimport

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/application/adapter"
)

// PreviewImportInput represents the input for previewing a statement import.
type PreviewImportInput struct {
	UserID    uuid.UUID
	Statement io.Reader
	// SuggestCategories asks the AI suggester for per-row categories when it
	// is configured. Failures fail open and rows keep their defaults.
	SuggestCategories bool
}

// PreviewImportOutput represents the output of previewing a statement import.
type PreviewImportOutput struct {
	Rows []ParsedRow
	// SuggestionsApplied reports whether any AI category suggestions were
	// applied to the rows.
	SuggestionsApplied bool
}

// PreviewImportUseCase parses an uploaded bank statement into candidate input
// cost rows the user can adjust and select before committing.
type PreviewImportUseCase struct {
	suggester adapter.CategorySuggester
}

// NewPreviewImportUseCase creates a new PreviewImportUseCase instance.
func NewPreviewImportUseCase(suggester adapter.CategorySuggester) *PreviewImportUseCase {
	return &PreviewImportUseCase{suggester: suggester}
}

// Execute parses the statement and optionally applies category suggestions.
func (uc *PreviewImportUseCase) Execute(ctx context.Context, input PreviewImportInput) (*PreviewImportOutput, error) {
	rows, err := ParseStatement(input.Statement)
	if err != nil {
		return nil, err
	}

	output := &PreviewImportOutput{Rows: rows}

	if input.SuggestCategories && uc.suggester.IsAvailable() && len(rows) > 0 {
		output.SuggestionsApplied = uc.applySuggestions(ctx, input.UserID, output.Rows)
	}

	return output, nil
}

// applySuggestions asks the suggester for categories and merges valid
// suggestions into the rows. Errors are logged and ignored.
func (uc *PreviewImportUseCase) applySuggestions(ctx context.Context, userID uuid.UUID, rows []ParsedRow) bool {
	requests := make([]adapter.StatementRow, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, adapter.StatementRow{
			RowIndex:    row.RowIndex,
			Description: row.Description,
			Amount:      row.Amount.StringFixed(2),
		})
	}

	suggestions, err := uc.suggester.Suggest(ctx, requests)
	if err != nil {
		slog.Debug("Category suggestion failed, keeping defaults",
			"userID", userID,
			"error", err,
		)
		return false
	}

	applied := false
	for _, s := range suggestions {
		if s.RowIndex < 0 || s.RowIndex >= len(rows) || !s.Category.IsValid() {
			continue
		}
		rows[s.RowIndex].Category = s.Category
		applied = true
	}

	return applied
}
