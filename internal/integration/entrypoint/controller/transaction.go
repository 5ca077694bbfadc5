// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/application/usecase/transaction"
	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/domain/valueobject"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles cattle transaction endpoints.
type TransactionController struct {
	createPurchaseUseCase *transaction.CreatePurchaseUseCase
	recordSaleUseCase     *transaction.RecordSaleUseCase
	listUseCase           *transaction.ListTransactionsUseCase
	deleteUseCase         *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createPurchaseUseCase *transaction.CreatePurchaseUseCase,
	recordSaleUseCase *transaction.RecordSaleUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createPurchaseUseCase: createPurchaseUseCase,
		recordSaleUseCase:     recordSaleUseCase,
		listUseCase:           listUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// CreatePurchase handles POST /transactions/purchase requests.
func (c *TransactionController) CreatePurchase(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreatePurchaseRequest
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
			Code:  string(domainerror.ErrCodeInvalidOccurredOn),
		})
		return
	}

	input := transaction.CreatePurchaseInput{
		UserID:       userID,
		Quantity:     req.Quantity,
		PricePerHead: decimal.NewFromFloat(req.PricePerHead),
		Breed:        req.Breed,
		OccurredOn:   occurredOn,
		Notes:        req.Notes,
	}
	if req.AverageWeightKg != nil {
		weight := decimal.NewFromFloat(*req.AverageWeightKg)
		input.AverageWeightKg = &weight
	}

	output, err := c.createPurchaseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// RecordSale handles POST /transactions/sale requests.
func (c *TransactionController) RecordSale(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RecordSaleRequest
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
			Code:  string(domainerror.ErrCodeInvalidOccurredOn),
		})
		return
	}

	allocations := make([]valueobject.AllocationRequest, 0, len(req.Allocations))
	for _, alloc := range req.Allocations {
		batchID, err := uuid.Parse(alloc.BatchID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid batch ID: " + alloc.BatchID,
				Code:  string(domainerror.ErrCodeBatchNotFound),
			})
			return
		}
		allocations = append(allocations, valueobject.AllocationRequest{
			BatchID:  batchID,
			Quantity: alloc.Quantity,
		})
	}

	input := transaction.RecordSaleInput{
		UserID:             userID,
		Allocations:        allocations,
		TotalSalePrice:     decimal.NewFromFloat(req.TotalSalePrice),
		InputCostDeduction: decimal.NewFromFloat(req.InputCostDeduction),
		OccurredOn:         occurredOn,
		Notes:              req.Notes,
	}

	output, err := c.recordSaleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
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
	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		if txnType == entity.TransactionTypeBuy || txnType == entity.TransactionTypeSell {
			input.Type = &txnType
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	transactions := make([]dto.TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = dto.ToTransactionResponse(txn)
	}

	ctx.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
	})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	input := transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// handleTransactionError handles transaction and allocation errors and returns
// appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var allocErr *domainerror.AllocationError
	if errors.As(err, &allocErr) {
		details := allocErr.Field
		if allocErr.BatchID != "" {
			details = "batch " + allocErr.BatchID
		}
		ctx.JSON(c.getStatusCodeForAllocationError(allocErr.Code), dto.ErrorResponse{
			Error:   allocErr.Message,
			Code:    string(allocErr.Code),
			Details: details,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTxn:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidPricePerHead,
		domainerror.ErrCodeInvalidOccurredOn,
		domainerror.ErrCodeNotesTooLong,
		domainerror.ErrCodeBreedTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodePurchaseHasAllocations:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForAllocationError maps allocation error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForAllocationError(code domainerror.AllocationErrorCode) int {
	switch code {
	case domainerror.ErrCodeBatchNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoAllocations,
		domainerror.ErrCodeInvalidAllocationQuantity,
		domainerror.ErrCodeInvalidDeduction,
		domainerror.ErrCodeInvalidSalePrice:
		return http.StatusBadRequest
	case domainerror.ErrCodeBatchOverAllocated,
		domainerror.ErrCodeDeductionExceedsPool,
		domainerror.ErrCodeAllocationConflict:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
