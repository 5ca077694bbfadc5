// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/entity"
	"github.com/herd-ledger/backend/internal/integration/persistence/model"
)

// allocationRepository implements the adapter.AllocationRepository interface.
type allocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository instance.
func NewAllocationRepository(db *gorm.DB) adapter.AllocationRepository {
	return &allocationRepository{
		db: db,
	}
}

// FindByUser retrieves all allocations for a user.
func (r *allocationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BatchAllocation, error) {
	var allocationModels []model.BatchAllocationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&allocationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	allocations := make([]*entity.BatchAllocation, len(allocationModels))
	for i, am := range allocationModels {
		allocations[i] = am.ToEntity()
	}
	return allocations, nil
}

// FindBySale retrieves the allocations belonging to a sale transaction.
func (r *allocationRepository) FindBySale(ctx context.Context, saleTransactionID uuid.UUID) ([]*entity.BatchAllocation, error) {
	var allocationModels []model.BatchAllocationModel
	result := r.db.WithContext(ctx).
		Where("sale_transaction_id = ?", saleTransactionID).
		Order("created_at ASC").
		Find(&allocationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	allocations := make([]*entity.BatchAllocation, len(allocationModels))
	for i, am := range allocationModels {
		allocations[i] = am.ToEntity()
	}
	return allocations, nil
}

// ExistsByPurchase reports whether any allocation references the given purchase batch.
func (r *allocationRepository) ExistsByPurchase(ctx context.Context, purchaseTransactionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BatchAllocationModel{}).
		Where("purchase_transaction_id = ?", purchaseTransactionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
