// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// CostFilter defines filter options for listing input costs.
type CostFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  *entity.CostCategory
}

// CostRepository defines the interface for input cost persistence.
type CostRepository interface {
	// Create creates a new input cost in the database.
	Create(ctx context.Context, cost *entity.InputCost) error

	// CreateBatch creates multiple input costs in one database transaction.
	// Used by the statement import commit.
	CreateBatch(ctx context.Context, costs []*entity.InputCost) error

	// FindByID retrieves an input cost by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InputCost, error)

	// FindByFilter retrieves input costs matching the filter, ordered by
	// occurred_on descending then created_at descending.
	FindByFilter(ctx context.Context, filter CostFilter) ([]*entity.InputCost, error)

	// SumAmounts sums the amount of every input cost owned by the user.
	SumAmounts(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// Delete removes an input cost from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
