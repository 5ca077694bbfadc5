// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/herd-ledger/backend/internal/application/usecase/dashboard"
	"github.com/herd-ledger/backend/internal/domain/entity"
	"github.com/herd-ledger/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetTransactionsInRange returns the user's transactions inside [start, end].
func (r *dashboardRepository) GetTransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CattleTransaction, error) {
	var transactionModels []model.CattleTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_on >= ? AND occurred_on <= ?", userID, start, end).
		Order("occurred_on ASC").
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

// GetCostsInRange returns the user's input costs inside [start, end].
func (r *dashboardRepository) GetCostsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.InputCost, error) {
	var costModels []model.InputCostModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_on >= ? AND occurred_on <= ?", userID, start, end).
		Order("occurred_on ASC").
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

// GetDateRange returns the date boundaries of the user's ledger.
func (r *dashboardRepository) GetDateRange(ctx context.Context, userID uuid.UUID) (*dashboard.DateRange, error) {
	var row struct {
		OldestDate *time.Time
		NewestDate *time.Time
		Total      int
	}

	err := r.db.WithContext(ctx).
		Model(&model.CattleTransactionModel{}).
		Where("user_id = ?", userID).
		Select("MIN(occurred_on) AS oldest_date, MAX(occurred_on) AS newest_date, COUNT(*) AS total").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &dashboard.DateRange{
		OldestDate:        row.OldestDate,
		NewestDate:        row.NewestDate,
		TotalTransactions: row.Total,
	}, nil
}
