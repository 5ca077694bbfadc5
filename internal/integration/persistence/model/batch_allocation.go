// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// BatchAllocationModel represents the batch_allocations table in the database.
type BatchAllocationModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleTransactionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseTransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity              int             `gorm:"not null"`
	CostPerHead           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BatchAllocationModel.
func (BatchAllocationModel) TableName() string {
	return "batch_allocations"
}

// ToEntity converts a BatchAllocationModel to a domain BatchAllocation entity.
func (m *BatchAllocationModel) ToEntity() *entity.BatchAllocation {
	return &entity.BatchAllocation{
		ID:                    m.ID,
		UserID:                m.UserID,
		SaleTransactionID:     m.SaleTransactionID,
		PurchaseTransactionID: m.PurchaseTransactionID,
		Quantity:              m.Quantity,
		CostPerHead:           m.CostPerHead,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// AllocationFromEntity creates a BatchAllocationModel from a domain entity.
func AllocationFromEntity(allocation *entity.BatchAllocation) *BatchAllocationModel {
	return &BatchAllocationModel{
		ID:                    allocation.ID,
		UserID:                allocation.UserID,
		SaleTransactionID:     allocation.SaleTransactionID,
		PurchaseTransactionID: allocation.PurchaseTransactionID,
		Quantity:              allocation.Quantity,
		CostPerHead:           allocation.CostPerHead,
		CreatedAt:             allocation.CreatedAt,
		UpdatedAt:             allocation.UpdatedAt,
	}
}
