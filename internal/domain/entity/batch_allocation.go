// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchAllocation attributes part of a sale's quantity to a specific purchase
// batch. Allocations are created exactly once at sale-creation time and are
// immutable children of the sale transaction.
//
// CostPerHead is a snapshot of the purchase batch's price per head at the
// moment the sale was committed, so the historical record stays stable even
// if unrelated data changes later.
type BatchAllocation struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	SaleTransactionID     uuid.UUID
	PurchaseTransactionID uuid.UUID
	Quantity              int
	CostPerHead           decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewBatchAllocation creates a new BatchAllocation entity.
func NewBatchAllocation(
	userID uuid.UUID,
	saleTransactionID uuid.UUID,
	purchaseTransactionID uuid.UUID,
	quantity int,
	costPerHead decimal.Decimal,
) *BatchAllocation {
	now := time.Now().UTC()

	return &BatchAllocation{
		ID:                    uuid.New(),
		UserID:                userID,
		SaleTransactionID:     saleTransactionID,
		PurchaseTransactionID: purchaseTransactionID,
		Quantity:              quantity,
		CostPerHead:           costPerHead,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
