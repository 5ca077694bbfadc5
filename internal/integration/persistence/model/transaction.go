// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// CattleTransactionModel represents the cattle_transactions table in the database.
type CattleTransactionModel struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type               string           `gorm:"type:varchar(10);not null;index"`
	Quantity           int              `gorm:"not null"`
	PricePerHead       decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	TotalAmount        decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Breed              string           `gorm:"type:varchar(100)"`
	AverageWeightKg    *decimal.Decimal `gorm:"type:decimal(8,2)"`
	OccurredOn         time.Time        `gorm:"type:date;not null;index"`
	Notes              string           `gorm:"type:text"`
	InputCostDeduction decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt          time.Time        `gorm:"not null"`
	UpdatedAt          time.Time        `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User        *UserModel             `gorm:"foreignKey:UserID;references:ID"`
	Allocations []BatchAllocationModel `gorm:"foreignKey:SaleTransactionID;references:ID"`
}

// TableName returns the table name for the CattleTransactionModel.
func (CattleTransactionModel) TableName() string {
	return "cattle_transactions"
}

// ToEntity converts a CattleTransactionModel to a domain CattleTransaction entity.
func (m *CattleTransactionModel) ToEntity() *entity.CattleTransaction {
	return &entity.CattleTransaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		Type:               entity.TransactionType(m.Type),
		Quantity:           m.Quantity,
		PricePerHead:       m.PricePerHead,
		TotalAmount:        m.TotalAmount,
		Breed:              m.Breed,
		AverageWeightKg:    m.AverageWeightKg,
		OccurredOn:         m.OccurredOn,
		Notes:              m.Notes,
		InputCostDeduction: m.InputCostDeduction,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// TransactionFromEntity creates a CattleTransactionModel from a domain entity.
func TransactionFromEntity(transaction *entity.CattleTransaction) *CattleTransactionModel {
	return &CattleTransactionModel{
		ID:                 transaction.ID,
		UserID:             transaction.UserID,
		Type:               string(transaction.Type),
		Quantity:           transaction.Quantity,
		PricePerHead:       transaction.PricePerHead,
		TotalAmount:        transaction.TotalAmount,
		Breed:              transaction.Breed,
		AverageWeightKg:    transaction.AverageWeightKg,
		OccurredOn:         transaction.OccurredOn,
		Notes:              transaction.Notes,
		InputCostDeduction: transaction.InputCostDeduction,
		CreatedAt:          transaction.CreatedAt,
		UpdatedAt:          transaction.UpdatedAt,
	}
}
