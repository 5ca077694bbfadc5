package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// TransactionOutput represents a cattle transaction in use case outputs.
type TransactionOutput struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Type               entity.TransactionType
	Quantity           int
	PricePerHead       decimal.Decimal
	TotalAmount        decimal.Decimal
	Breed              string
	AverageWeightKg    *decimal.Decimal
	OccurredOn         time.Time
	Notes              string
	InputCostDeduction decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Allocations        []*AllocationOutput
}

// AllocationOutput represents a batch allocation in use case outputs.
type AllocationOutput struct {
	ID                    uuid.UUID
	SaleTransactionID     uuid.UUID
	PurchaseTransactionID uuid.UUID
	Quantity              int
	CostPerHead           decimal.Decimal
	CreatedAt             time.Time
}

func toTransactionOutput(t *entity.CattleTransaction) *TransactionOutput {
	return &TransactionOutput{
		ID:                 t.ID,
		UserID:             t.UserID,
		Type:               t.Type,
		Quantity:           t.Quantity,
		PricePerHead:       t.PricePerHead,
		TotalAmount:        t.TotalAmount,
		Breed:              t.Breed,
		AverageWeightKg:    t.AverageWeightKg,
		OccurredOn:         t.OccurredOn,
		Notes:              t.Notes,
		InputCostDeduction: t.InputCostDeduction,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func toAllocationOutput(a *entity.BatchAllocation) *AllocationOutput {
	return &AllocationOutput{
		ID:                    a.ID,
		SaleTransactionID:     a.SaleTransactionID,
		PurchaseTransactionID: a.PurchaseTransactionID,
		Quantity:              a.Quantity,
		CostPerHead:           a.CostPerHead,
		CreatedAt:             a.CreatedAt,
	}
}
