// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/herd-ledger/backend/internal/application/usecase/costimport"
)

// ImportRowRequest represents one selected statement row in a commit request.
type ImportRowRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
}

// CommitImportRequest represents the request body for committing an import.
type CommitImportRequest struct {
	Rows []ImportRowRequest `json:"rows" binding:"required,min=1,dive"`
}

// ParsedRowResponse represents a parsed statement row in the preview response.
type ParsedRowResponse struct {
	RowIndex    int    `json:"row_index"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
}

// PreviewImportResponse represents the response for the import preview endpoint.
type PreviewImportResponse struct {
	Rows               []ParsedRowResponse `json:"rows"`
	SuggestionsApplied bool                `json:"suggestions_applied"`
}

// CommitImportResponse represents the response for the import commit endpoint.
type CommitImportResponse struct {
	ImportedCount int `json:"imported_count"`
}

// ToPreviewImportResponse converts a PreviewImportOutput to a PreviewImportResponse DTO.
func ToPreviewImportResponse(output *costimport.PreviewImportOutput) PreviewImportResponse {
	rows := make([]ParsedRowResponse, len(output.Rows))
	for i, row := range output.Rows {
		rows[i] = ParsedRowResponse{
			RowIndex:    row.RowIndex,
			Date:        row.Date.Format("2006-01-02"),
			Description: row.Description,
			Amount:      row.Amount.String(),
			Category:    string(row.Category),
		}
	}

	return PreviewImportResponse{
		Rows:               rows,
		SuggestionsApplied: output.SuggestionsApplied,
	}
}
