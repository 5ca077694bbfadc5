// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a cattle transaction (buy or sell).
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

// CattleTransaction represents a cattle purchase or sale in the Herd Ledger system.
//
// For a buy, TotalAmount is always Quantity x PricePerHead and the transaction
// opens a batch that sales are later allocated against. For a sell, TotalAmount
// is the agreed sale price entered directly, Quantity equals the sum of its
// allocations' quantities, and PricePerHead is derived as TotalAmount / Quantity.
type CattleTransaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Type            TransactionType
	Quantity        int
	PricePerHead    decimal.Decimal
	TotalAmount     decimal.Decimal
	Breed           string
	AverageWeightKg *decimal.Decimal
	OccurredOn      time.Time
	Notes           string
	// InputCostDeduction is the slice of the shared operating-cost pool
	// attributed to this sale. Always zero for buys.
	InputCostDeduction decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewPurchase creates a new buy transaction. TotalAmount is derived from
// quantity and price per head.
func NewPurchase(
	userID uuid.UUID,
	quantity int,
	pricePerHead decimal.Decimal,
	breed string,
	averageWeightKg *decimal.Decimal,
	occurredOn time.Time,
	notes string,
) *CattleTransaction {
	now := time.Now().UTC()

	return &CattleTransaction{
		ID:                 uuid.New(),
		UserID:             userID,
		Type:               TransactionTypeBuy,
		Quantity:           quantity,
		PricePerHead:       pricePerHead,
		TotalAmount:        pricePerHead.Mul(decimal.NewFromInt(int64(quantity))),
		Breed:              breed,
		AverageWeightKg:    averageWeightKg,
		OccurredOn:         occurredOn,
		Notes:              notes,
		InputCostDeduction: decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NewSale creates a new sell transaction. PricePerHead is derived from the
// total sale price, not from the cost of the batches being sold.
func NewSale(
	userID uuid.UUID,
	quantity int,
	totalSalePrice decimal.Decimal,
	inputCostDeduction decimal.Decimal,
	occurredOn time.Time,
	notes string,
) *CattleTransaction {
	now := time.Now().UTC()

	return &CattleTransaction{
		ID:                 uuid.New(),
		UserID:             userID,
		Type:               TransactionTypeSell,
		Quantity:           quantity,
		PricePerHead:       totalSalePrice.Div(decimal.NewFromInt(int64(quantity))),
		TotalAmount:        totalSalePrice,
		OccurredOn:         occurredOn,
		Notes:              notes,
		InputCostDeduction: inputCostDeduction,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsBuy reports whether the transaction is a purchase.
func (t *CattleTransaction) IsBuy() bool {
	return t.Type == TransactionTypeBuy
}

// IsSell reports whether the transaction is a sale.
func (t *CattleTransaction) IsSell() bool {
	return t.Type == TransactionTypeSell
}

// TransactionWithAllocations represents a sale together with its batch allocations.
type TransactionWithAllocations struct {
	Transaction *CattleTransaction
	Allocations []*BatchAllocation
}
