package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/scandine/domain"
)

// TokenBlacklistImpl implements domain.TokenBlacklist using Redis. Entries
// are keyed by the raw token value so revocation checks are point lookups,
// and they carry a TTL matching the token's remaining lifetime so the ledger
// garbage-collects itself.
type TokenBlacklistImpl struct {
	client *redis.Client
	prefix string
}

// NewTokenBlacklist creates a new token blacklist repository
func NewTokenBlacklist(client *redis.Client) domain.TokenBlacklist {
	return &TokenBlacklistImpl{
		client: client,
		prefix: "blacklist:",
	}
}

// Revoke implements domain.TokenBlacklist. SET is idempotent; re-revoking
// only refreshes the entry.
func (r *TokenBlacklistImpl) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token is already past its expiry; verification rejects it anyway.
		return nil
	}
	return r.client.Set(ctx, r.prefix+token, time.Now().Unix(), ttl).Err()
}

// IsRevoked implements domain.TokenBlacklist
func (r *TokenBlacklistImpl) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, r.prefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
