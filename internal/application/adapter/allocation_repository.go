// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// AllocationRepository defines the interface for batch allocation reads.
// Allocations are written only through
// TransactionRepository.CreateSaleWithAllocations.
type AllocationRepository interface {
	// FindByUser retrieves all allocations for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BatchAllocation, error)

	// FindBySale retrieves the allocations belonging to a sale transaction.
	FindBySale(ctx context.Context, saleTransactionID uuid.UUID) ([]*entity.BatchAllocation, error)

	// ExistsByPurchase reports whether any allocation references the given
	// purchase batch. Used to block deletion of partially sold batches.
	ExistsByPurchase(ctx context.Context, purchaseTransactionID uuid.UUID) (bool, error)
}
