// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.CattleTransaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateSaleWithAllocations atomically creates a sell transaction with its
// batch allocations. Each referenced batch row is locked and its remaining
// quantity re-checked inside the transaction, so two concurrent sales against
// the same batch cannot both commit past the limit.
func (r *transactionRepository) CreateSaleWithAllocations(ctx context.Context, sale *entity.CattleTransaction, allocations []*entity.BatchAllocation) error {
	requested := make(map[uuid.UUID]int, len(allocations))
	for _, alloc := range allocations {
		requested[alloc.PurchaseTransactionID] += alloc.Quantity
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for batchID, quantity := range requested {
			var purchase model.CattleTransactionModel
			result := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND user_id = ? AND type = ?", batchID, sale.UserID, string(entity.TransactionTypeBuy)).
				First(&purchase)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return domainerror.NewBatchAllocationError(
						domainerror.ErrCodeBatchNotFound,
						"batch not found",
						batchID.String(),
						domainerror.ErrBatchNotFound,
					)
				}
				return result.Error
			}

			var alreadyAllocated int64
			err := tx.Model(&model.BatchAllocationModel{}).
				Where("purchase_transaction_id = ?", batchID).
				Select("COALESCE(SUM(quantity), 0)").
				Scan(&alreadyAllocated).Error
			if err != nil {
				return fmt.Errorf("failed to sum batch allocations: %w", err)
			}

			if int64(purchase.Quantity)-alreadyAllocated < int64(quantity) {
				return domainerror.NewBatchAllocationError(
					domainerror.ErrCodeAllocationConflict,
					"batch was allocated concurrently and no longer has enough head",
					batchID.String(),
					domainerror.ErrBatchOverAllocated,
				)
			}
		}

		if err := tx.Create(model.TransactionFromEntity(sale)).Error; err != nil {
			return err
		}

		allocationModels := make([]*model.BatchAllocationModel, 0, len(allocations))
		for _, alloc := range allocations {
			allocationModels = append(allocationModels, model.AllocationFromEntity(alloc))
		}
		if err := tx.Create(allocationModels).Error; err != nil {
			return err
		}

		return nil
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CattleTransaction, error) {
	var transactionModel model.CattleTransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions based on filter criteria.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.CattleTransaction, error) {
	query := r.db.WithContext(ctx).Model(&model.CattleTransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("occurred_on >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("occurred_on <= ?", filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	var transactionModels []model.CattleTransactionModel
	result := query.
		Order("occurred_on DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.CattleTransaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindPurchases retrieves all buy transactions for a user, newest first.
func (r *transactionRepository) FindPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.CattleTransaction, error) {
	var transactionModels []model.CattleTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(entity.TransactionTypeBuy)).
		Order("occurred_on DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.CattleTransaction, len(transactionModels))
	for i, tm := range transactionModels {
		purchases[i] = tm.ToEntity()
	}
	return purchases, nil
}

// SumDeductions sums input_cost_deduction across all of the user's sales.
func (r *transactionRepository) SumDeductions(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.CattleTransactionModel{}).
		Where("user_id = ? AND type = ?", userID, string(entity.TransactionTypeSell)).
		Select("COALESCE(SUM(input_cost_deduction), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Delete removes a transaction. Deleting a sale also removes its allocations
// in the same database transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_transaction_id = ?", id).
			Delete(&model.BatchAllocationModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.CattleTransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return nil
	})
}
