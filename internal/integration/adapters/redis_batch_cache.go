package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

const batchCacheKeyPrefix = "batches:available:"

// RedisBatchCache implements adapter.BatchCache backed by Redis. Entries
// expire after the configured TTL; writes to transactions invalidate the
// owning user's entry eagerly.
type RedisBatchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBatchCache creates a new Redis-backed batch projection cache.
func NewRedisBatchCache(client *redis.Client, ttl time.Duration) *RedisBatchCache {
	return &RedisBatchCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached projection for the user, or (nil, nil) on miss.
func (c *RedisBatchCache) Get(ctx context.Context, userID uuid.UUID) ([]valueobject.AvailableBatch, error) {
	payload, err := c.client.Get(ctx, batchCacheKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read batch cache: %w", err)
	}

	var batches []valueobject.AvailableBatch
	if err := json.Unmarshal(payload, &batches); err != nil {
		return nil, fmt.Errorf("failed to decode batch cache entry: %w", err)
	}

	return batches, nil
}

// Set stores the projection for the user with the configured TTL.
func (c *RedisBatchCache) Set(ctx context.Context, userID uuid.UUID, batches []valueobject.AvailableBatch) error {
	payload, err := json.Marshal(batches)
	if err != nil {
		return fmt.Errorf("failed to encode batch cache entry: %w", err)
	}

	if err := c.client.Set(ctx, batchCacheKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write batch cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached projection for the user.
func (c *RedisBatchCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, batchCacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate batch cache: %w", err)
	}

	return nil
}

func batchCacheKey(userID uuid.UUID) string {
	return batchCacheKeyPrefix + userID.String()
}

var _ adapter.BatchCache = (*RedisBatchCache)(nil)
