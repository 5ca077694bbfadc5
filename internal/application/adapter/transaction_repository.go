// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing cattle transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
}

// TransactionRepository defines the interface for cattle transaction persistence.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.CattleTransaction) error

	// CreateSaleWithAllocations atomically creates a sell transaction together
	// with its batch allocations. The write must re-verify, inside the same
	// database transaction, that no referenced batch's remaining quantity goes
	// negative, and abort with domainerror.ErrBatchOverAllocated otherwise.
	CreateSaleWithAllocations(ctx context.Context, sale *entity.CattleTransaction, allocations []*entity.BatchAllocation) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CattleTransaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by
	// occurred_on descending then created_at descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.CattleTransaction, error)

	// FindPurchases retrieves all buy transactions for a user, newest first.
	FindPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.CattleTransaction, error)

	// SumDeductions sums input_cost_deduction across all of the user's sales.
	SumDeductions(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// Delete removes a transaction. Deleting a sale also removes its
	// allocations in the same database transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
