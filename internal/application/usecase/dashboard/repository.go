// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// DashboardRepository defines the interface for dashboard data reads. It
// returns raw ledger rows; all aggregation happens in pure functions so the
// same numbers come out regardless of the backing store.
type DashboardRepository interface {
	// GetTransactionsInRange returns the user's transactions with occurred_on
	// inside [start, end], both endpoints inclusive.
	GetTransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CattleTransaction, error)

	// GetCostsInRange returns the user's input costs with occurred_on inside
	// [start, end], both endpoints inclusive.
	GetCostsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.InputCost, error)

	// GetDateRange returns the date boundaries of the user's ledger.
	GetDateRange(ctx context.Context, userID uuid.UUID) (*DateRange, error)
}

// DateRange represents the date boundaries of a user's ledger history.
type DateRange struct {
	OldestDate        *time.Time
	NewestDate        *time.Time
	TotalTransactions int
}
