// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/herd-ledger/backend/internal/application/usecase/transaction"
)

// CreatePurchaseRequest represents the request body for recording a purchase.
type CreatePurchaseRequest struct {
	Quantity        int      `json:"quantity" binding:"required,gt=0"`
	PricePerHead    float64  `json:"price_per_head" binding:"gte=0"`
	Breed           string   `json:"breed" binding:"omitempty,max=100"`
	AverageWeightKg *float64 `json:"average_weight_kg,omitempty" binding:"omitempty,gt=0"`
	Date            string   `json:"date" binding:"required"`
	Notes           string   `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// SaleAllocationRequest represents one allocation line of a sale request.
type SaleAllocationRequest struct {
	BatchID  string `json:"batch_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// RecordSaleRequest represents the request body for recording a sale.
type RecordSaleRequest struct {
	Allocations        []SaleAllocationRequest `json:"allocations" binding:"required,min=1,dive"`
	TotalSalePrice     float64                 `json:"total_sale_price" binding:"required,gt=0"`
	InputCostDeduction float64                 `json:"input_cost_deduction" binding:"gte=0"`
	Date               string                  `json:"date" binding:"required"`
	Notes              string                  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// AllocationResponse represents a batch allocation in API responses.
type AllocationResponse struct {
	ID                    string    `json:"id"`
	SaleTransactionID     string    `json:"sale_transaction_id"`
	PurchaseTransactionID string    `json:"purchase_transaction_id"`
	Quantity              int       `json:"quantity"`
	CostPerHead           string    `json:"cost_per_head"`
	CreatedAt             time.Time `json:"created_at"`
}

// TransactionResponse represents a single cattle transaction in API responses.
type TransactionResponse struct {
	ID                 string               `json:"id"`
	UserID             string               `json:"user_id"`
	Type               string               `json:"type"`
	Quantity           int                  `json:"quantity"`
	PricePerHead       string               `json:"price_per_head"`
	TotalAmount        string               `json:"total_amount"`
	Breed              string               `json:"breed,omitempty"`
	AverageWeightKg    *string              `json:"average_weight_kg,omitempty"`
	Date               string               `json:"date"`
	Notes              string               `json:"notes"`
	InputCostDeduction string               `json:"input_cost_deduction"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	Allocations        []AllocationResponse `json:"allocations,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:                 txn.ID.String(),
		UserID:             txn.UserID.String(),
		Type:               string(txn.Type),
		Quantity:           txn.Quantity,
		PricePerHead:       txn.PricePerHead.String(),
		TotalAmount:        txn.TotalAmount.String(),
		Breed:              txn.Breed,
		Date:               txn.OccurredOn.Format("2006-01-02"),
		Notes:              txn.Notes,
		InputCostDeduction: txn.InputCostDeduction.String(),
		CreatedAt:          txn.CreatedAt,
		UpdatedAt:          txn.UpdatedAt,
	}

	if txn.AverageWeightKg != nil {
		weight := txn.AverageWeightKg.String()
		response.AverageWeightKg = &weight
	}

	if len(txn.Allocations) > 0 {
		response.Allocations = make([]AllocationResponse, len(txn.Allocations))
		for i, alloc := range txn.Allocations {
			response.Allocations[i] = ToAllocationResponse(alloc)
		}
	}

	return response
}

// ToAllocationResponse converts an AllocationOutput to an AllocationResponse DTO.
func ToAllocationResponse(alloc *transaction.AllocationOutput) AllocationResponse {
	return AllocationResponse{
		ID:                    alloc.ID.String(),
		SaleTransactionID:     alloc.SaleTransactionID.String(),
		PurchaseTransactionID: alloc.PurchaseTransactionID.String(),
		Quantity:              alloc.Quantity,
		CostPerHead:           alloc.CostPerHead.String(),
		CreatedAt:             alloc.CreatedAt,
	}
}
