// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostCategory represents an operating-expense category for input costs.
type CostCategory string

const (
	CostCategoryFeed           CostCategory = "feed"
	CostCategoryVeterinary     CostCategory = "veterinary"
	CostCategoryEquipment      CostCategory = "equipment"
	CostCategoryLabor          CostCategory = "labor"
	CostCategoryUtilities      CostCategory = "utilities"
	CostCategoryInsurance      CostCategory = "insurance"
	CostCategoryTransportation CostCategory = "transportation"
	CostCategoryMaintenance    CostCategory = "maintenance"
	CostCategoryOther          CostCategory = "other"
)

// CostCategories lists every valid cost category.
var CostCategories = []CostCategory{
	CostCategoryFeed,
	CostCategoryVeterinary,
	CostCategoryEquipment,
	CostCategoryLabor,
	CostCategoryUtilities,
	CostCategoryInsurance,
	CostCategoryTransportation,
	CostCategoryMaintenance,
	CostCategoryOther,
}

// IsValid reports whether the category is one of the known cost categories.
func (c CostCategory) IsValid() bool {
	for _, known := range CostCategories {
		if c == known {
			return true
		}
	}
	return false
}

// InputCost represents an operating expense (feed, veterinary, labor, ...).
// Input costs are immutable once created; they are only inserted or deleted.
type InputCost struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    CostCategory
	Amount      decimal.Decimal
	OccurredOn  time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewInputCost creates a new InputCost entity.
func NewInputCost(
	userID uuid.UUID,
	category CostCategory,
	amount decimal.Decimal,
	occurredOn time.Time,
	description string,
) *InputCost {
	now := time.Now().UTC()

	return &InputCost{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		OccurredOn:  occurredOn,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
