// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/application/usecase/costimport"
	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/middleware"
)

// maxStatementSize bounds uploaded statement files to 5 MiB.
const maxStatementSize = 5 << 20

// CostImportController handles bank statement import endpoints.
type CostImportController struct {
	previewUseCase *costimport.PreviewImportUseCase
	commitUseCase  *costimport.CommitImportUseCase
}

// NewCostImportController creates a new cost import controller instance.
func NewCostImportController(
	previewUseCase *costimport.PreviewImportUseCase,
	commitUseCase *costimport.CommitImportUseCase,
) *CostImportController {
	return &CostImportController{
		previewUseCase: previewUseCase,
		commitUseCase:  commitUseCase,
	}
}

// Preview handles POST /costs/import/preview requests.
// The statement is uploaded as a multipart file under the "file" field.
func (c *CostImportController) Preview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Statement file is required",
			Code:  string(domainerror.ErrCodeEmptyStatement),
		})
		return
	}

	if fileHeader.Size > maxStatementSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Statement file exceeds the 5 MiB limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read statement file",
			Code:  string(domainerror.ErrCodeMalformedStatement),
		})
		return
	}
	defer file.Close()

	input := costimport.PreviewImportInput{
		UserID:            userID,
		Statement:         file,
		SuggestCategories: ctx.Query("suggest") == "true",
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreviewImportResponse(output))
}

// Commit handles POST /costs/import requests.
func (c *CostImportController) Commit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CommitImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeNoRowsSelected),
		})
		return
	}

	rows := make([]costimport.ImportRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid row date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidCostDate),
			})
			return
		}
		rows = append(rows, costimport.ImportRow{
			Date:        date,
			Description: row.Description,
			Amount:      decimal.NewFromFloat(row.Amount),
			Category:    entity.CostCategory(row.Category),
		})
	}

	input := costimport.CommitImportInput{
		UserID: userID,
		Rows:   rows,
	}

	output, err := c.commitUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CommitImportResponse{
		ImportedCount: output.ImportedCount,
	})
}

// handleImportError handles import errors and returns appropriate HTTP responses.
func (c *CostImportController) handleImportError(ctx *gin.Context, err error) {
	var costErr *domainerror.CostError
	if errors.As(err, &costErr) {
		statusCode := http.StatusBadRequest
		if costErr.Code == domainerror.ErrCodeCostInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: costErr.Message,
			Code:  string(costErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
