// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// InputCostModel represents the input_costs table in the database.
type InputCostModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    string          `gorm:"type:varchar(30);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OccurredOn  time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InputCostModel.
func (InputCostModel) TableName() string {
	return "input_costs"
}

// ToEntity converts an InputCostModel to a domain InputCost entity.
func (m *InputCostModel) ToEntity() *entity.InputCost {
	return &entity.InputCost{
		ID:          m.ID,
		UserID:      m.UserID,
		Category:    entity.CostCategory(m.Category),
		Amount:      m.Amount,
		OccurredOn:  m.OccurredOn,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CostFromEntity creates an InputCostModel from a domain entity.
func CostFromEntity(cost *entity.InputCost) *InputCostModel {
	return &InputCostModel{
		ID:          cost.ID,
		UserID:      cost.UserID,
		Category:    string(cost.Category),
		Amount:      cost.Amount,
		OccurredOn:  cost.OccurredOn,
		Description: cost.Description,
		CreatedAt:   cost.CreatedAt,
		UpdatedAt:   cost.UpdatedAt,
	}
}
