package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

// BatchCache caches the per-user available batch projection.
//
// Implementations must fail open: a cache error is never surfaced to the
// caller as a failure of the batch listing itself.
type BatchCache interface {
	// Get returns the cached projection for the user, or (nil, nil) on miss.
	Get(ctx context.Context, userID uuid.UUID) ([]valueobject.AvailableBatch, error)

	// Set stores the projection for the user.
	Set(ctx context.Context, userID uuid.UUID, batches []valueobject.AvailableBatch) error

	// Invalidate drops the cached projection for the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
