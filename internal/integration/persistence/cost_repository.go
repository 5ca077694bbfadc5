// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/integration/persistence/model"
)

// costRepository implements the adapter.CostRepository interface.
type costRepository struct {
	db *gorm.DB
}

// NewCostRepository creates a new cost repository instance.
func NewCostRepository(db *gorm.DB) adapter.CostRepository {
	return &costRepository{
		db: db,
	}
}

// Create creates a new input cost in the database.
func (r *costRepository) Create(ctx context.Context, cost *entity.InputCost) error {
	costModel := model.CostFromEntity(cost)
	result := r.db.WithContext(ctx).Create(costModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates multiple input costs in one database transaction.
func (r *costRepository) CreateBatch(ctx context.Context, costs []*entity.InputCost) error {
	costModels := make([]*model.InputCostModel, 0, len(costs))
	for _, cost := range costs {
		costModels = append(costModels, model.CostFromEntity(cost))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(costModels).Error
	})
}

// FindByID retrieves an input cost by its ID.
func (r *costRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InputCost, error) {
	var costModel model.InputCostModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&costModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCostNotFound
		}
		return nil, result.Error
	}
	return costModel.ToEntity(), nil
}

// FindByFilter retrieves input costs based on filter criteria.
func (r *costRepository) FindByFilter(ctx context.Context, filter adapter.CostFilter) ([]*entity.InputCost, error) {
	query := r.db.WithContext(ctx).Model(&model.InputCostModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("occurred_on >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("occurred_on <= ?", filter.EndDate)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}

	var costModels []model.InputCostModel
	result := query.
		Order("occurred_on DESC, created_at DESC").
		Find(&costModels)
	if result.Error != nil {
		return nil, result.Error
	}

	costs := make([]*entity.InputCost, len(costModels))
	for i, cm := range costModels {
		costs[i] = cm.ToEntity()
	}
	return costs, nil
}

// SumAmounts sums the amount of every input cost owned by the user.
func (r *costRepository) SumAmounts(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.InputCostModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Delete removes an input cost from the database.
func (r *costRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InputCostModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCostNotFound
	}
	return nil
}
