// Package cache provides the read-through cache in front of the public read
// endpoints. Entries are JSON-serialized, expire by TTL, and are never
// updated in place: writes to the underlying data delete the key, and the
// next read rebuilds it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/scandine/domain"
)

// RedisCache implements domain.Cache
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed cache
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get implements domain.Cache
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set implements domain.Cache
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete implements domain.Cache. Deleting a missing key is a no-op.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// GetOrLoad returns the cached value for key, or invokes loader on a miss and
// stores the result with the given TTL. A loader failure propagates to the
// caller and caches nothing.
func GetOrLoad[T any](ctx context.Context, store domain.Cache, key string, ttl time.Duration, loader func(context.Context) (T, error)) (T, error) {
	var zero T

	data, err := store.Get(ctx, key)
	if err == nil {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}
		// A corrupt entry is treated as a miss; it gets rebuilt below.
	} else if err != domain.ErrCacheMiss {
		return zero, fmt.Errorf("cache read for %q: %w", key, err)
	}

	value, err := loader(ctx)
	if err != nil {
		return zero, err
	}

	data, err = json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal cache value for %q: %w", key, err)
	}
	if err := store.Set(ctx, key, data, ttl); err != nil {
		return zero, fmt.Errorf("cache write for %q: %w", key, err)
	}

	return value, nil
}
