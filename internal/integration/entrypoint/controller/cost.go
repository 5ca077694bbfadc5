// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/application/usecase/cost"
	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/middleware"
)

// CostController handles input cost endpoints.
type CostController struct {
	createUseCase      *cost.CreateCostUseCase
	listUseCase        *cost.ListCostsUseCase
	deleteUseCase      *cost.DeleteCostUseCase
	unaccountedUseCase *cost.GetUnaccountedUseCase
}

// NewCostController creates a new cost controller instance.
func NewCostController(
	createUseCase *cost.CreateCostUseCase,
	listUseCase *cost.ListCostsUseCase,
	deleteUseCase *cost.DeleteCostUseCase,
	unaccountedUseCase *cost.GetUnaccountedUseCase,
) *CostController {
	return &CostController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		deleteUseCase:      deleteUseCase,
		unaccountedUseCase: unaccountedUseCase,
	}
}

// Create handles POST /costs requests.
func (c *CostController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	occurredOn, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidCostDate),
		})
		return
	}

	input := cost.CreateCostInput{
		UserID:      userID,
		Category:    entity.CostCategory(req.Category),
		Amount:      decimal.NewFromFloat(req.Amount),
		OccurredOn:  occurredOn,
		Description: req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCostResponse(output.Cost))
}

// List handles GET /costs requests.
func (c *CostController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := cost.ListCostsInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}
	if categoryStr := ctx.Query("category"); categoryStr != "" {
		category := entity.CostCategory(categoryStr)
		if category.IsValid() {
			input.Category = &category
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCostError(ctx, err)
		return
	}

	costs := make([]dto.CostResponse, len(output.Costs))
	for i, item := range output.Costs {
		costs[i] = dto.ToCostResponse(item)
	}

	ctx.JSON(http.StatusOK, dto.CostListResponse{
		Costs: costs,
	})
}

// Delete handles DELETE /costs/:id requests.
func (c *CostController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	costID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cost ID",
			Code:  string(domainerror.ErrCodeCostNotFound),
		})
		return
	}

	input := cost.DeleteCostInput{
		UserID: userID,
		CostID: costID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCostError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetUnaccounted handles GET /costs/unaccounted requests.
func (c *CostController) GetUnaccounted(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := cost.GetUnaccountedInput{
		UserID: userID,
	}

	output, err := c.unaccountedUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnaccountedResponse{
		TotalCosts:    output.TotalCosts.String(),
		TotalDeducted: output.TotalDeducted.String(),
		Unaccounted:   output.Unaccounted.String(),
	})
}

// handleCostError handles cost errors and returns appropriate HTTP responses.
func (c *CostController) handleCostError(ctx *gin.Context, err error) {
	var costErr *domainerror.CostError
	if errors.As(err, &costErr) {
		ctx.JSON(c.getStatusCodeForCostError(costErr.Code), dto.ErrorResponse{
			Error: costErr.Message,
			Code:  string(costErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCostError maps cost error codes to HTTP status codes.
func (c *CostController) getStatusCodeForCostError(code domainerror.CostErrorCode) int {
	switch code {
	case domainerror.ErrCodeCostNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCost:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCostAmount,
		domainerror.ErrCodeInvalidCostCategory,
		domainerror.ErrCodeInvalidCostDate,
		domainerror.ErrCodeDescriptionTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
