package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/herd-ledger/backend/internal/application/adapter"
)

const tokenBlacklistKeyPrefix = "auth:revoked:"

// RedisTokenBlacklist implements adapter.TokenBlacklist backed by Redis.
// Revoked access tokens are stored until their natural expiry, so the set
// stays bounded without a sweeper.
type RedisTokenBlacklist struct {
	client *redis.Client
}

// NewRedisTokenBlacklist creates a new Redis-backed token blacklist.
func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client}
}

// Add blacklists a token for the given time-to-live.
func (b *RedisTokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}

	if err := b.client.Set(ctx, blacklistKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// Contains reports whether a token has been blacklisted.
func (b *RedisTokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	count, err := b.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return count > 0, nil
}

// blacklistKey hashes the token so raw JWTs never land in Redis.
func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenBlacklistKeyPrefix + hex.EncodeToString(sum[:])
}

var _ adapter.TokenBlacklist = (*RedisTokenBlacklist)(nil)
