// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/herd-ledger/backend/internal/application/usecase/batch"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/middleware"
)

// BatchController handles available-batch endpoints.
type BatchController struct {
	listUseCase *batch.ListAvailableBatchesUseCase
}

// NewBatchController creates a new batch controller instance.
func NewBatchController(listUseCase *batch.ListAvailableBatchesUseCase) *BatchController {
	return &BatchController{
		listUseCase: listUseCase,
	}
}

// List handles GET /batches requests.
// The selectable query parameter restricts the result to batches that still
// have unsold head.
func (c *BatchController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := batch.ListAvailableBatchesInput{
		UserID:         userID,
		OnlySelectable: ctx.Query("selectable") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	batches := make([]dto.BatchResponse, len(output.Batches))
	for i, b := range output.Batches {
		batches[i] = dto.ToBatchResponse(b)
	}

	ctx.JSON(http.StatusOK, dto.BatchListResponse{
		Batches: batches,
	})
}
