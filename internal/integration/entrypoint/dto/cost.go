// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/herd-ledger/backend/internal/application/usecase/cost"
)

// CreateCostRequest represents the request body for recording an input cost.
type CreateCostRequest struct {
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// CostResponse represents a single input cost in API responses.
type CostResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CostListResponse represents the response for listing input costs.
type CostListResponse struct {
	Costs []CostResponse `json:"costs"`
}

// UnaccountedResponse represents the shared deduction pool in API responses.
type UnaccountedResponse struct {
	TotalCosts    string `json:"total_costs"`
	TotalDeducted string `json:"total_deducted"`
	Unaccounted   string `json:"unaccounted"`
}

// ToCostResponse converts a CostOutput to a CostResponse DTO.
func ToCostResponse(c *cost.CostOutput) CostResponse {
	return CostResponse{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		Category:    string(c.Category),
		Amount:      c.Amount.String(),
		Date:        c.OccurredOn.Format("2006-01-02"),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
