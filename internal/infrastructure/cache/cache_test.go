package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/you/scandine/domain"
)

func setupTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
	})

	return NewRedisCache(client), mr
}

func TestRedisCache_GetMissingKey(t *testing.T) {
	store, _ := setupTestCache(t)

	_, err := store.Get(context.Background(), "absent")
	if err != domain.ErrCacheMiss {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
}

func TestRedisCache_SetAndGet(t *testing.T) {
	store, mr := setupTestCache(t)
	ctx := context.Background()

	if err := store.Set(ctx, "key", []byte(`{"a":1}`), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("expected stored value back, got %q", data)
	}

	ttl := mr.TTL("key")
	if ttl < time.Minute-time.Second || ttl > time.Minute+time.Second {
		t.Errorf("expected TTL around one minute, got %v", ttl)
	}
}

func TestRedisCache_DeleteMissingKeyIsNoop(t *testing.T) {
	store, _ := setupTestCache(t)

	if err := store.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("expected no error deleting a missing key, got %v", err)
	}
}

func TestGetOrLoad(t *testing.T) {
	type payload struct {
		Value string `json:"value"`
	}

	t.Run("miss loads and caches", func(t *testing.T) {
		store, _ := setupTestCache(t)
		ctx := context.Background()
		loads := 0

		loader := func(ctx context.Context) (payload, error) {
			loads++
			return payload{Value: "fresh"}, nil
		}

		got, err := GetOrLoad(ctx, store, "key", time.Minute, loader)
		if err != nil {
			t.Fatalf("GetOrLoad failed: %v", err)
		}
		if got.Value != "fresh" {
			t.Errorf("expected loaded value, got %+v", got)
		}
		if loads != 1 {
			t.Errorf("expected one load, got %d", loads)
		}

		// Second read is a hit; the loader must not run again.
		got, err = GetOrLoad(ctx, store, "key", time.Minute, loader)
		if err != nil {
			t.Fatalf("GetOrLoad failed: %v", err)
		}
		if got.Value != "fresh" {
			t.Errorf("expected cached value, got %+v", got)
		}
		if loads != 1 {
			t.Errorf("expected the cache hit to skip the loader, got %d loads", loads)
		}
	})

	t.Run("delete forces a reload", func(t *testing.T) {
		store, _ := setupTestCache(t)
		ctx := context.Background()
		loads := 0

		loader := func(ctx context.Context) (payload, error) {
			loads++
			if loads == 1 {
				return payload{Value: "first"}, nil
			}
			return payload{Value: "second"}, nil
		}

		if _, err := GetOrLoad(ctx, store, "key", time.Minute, loader); err != nil {
			t.Fatalf("GetOrLoad failed: %v", err)
		}
		if err := store.Delete(ctx, "key"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		got, err := GetOrLoad(ctx, store, "key", time.Minute, loader)
		if err != nil {
			t.Fatalf("GetOrLoad failed: %v", err)
		}
		if got.Value != "second" {
			t.Errorf("expected the reloaded value after invalidation, got %+v", got)
		}
		if loads != 2 {
			t.Errorf("expected two loads, got %d", loads)
		}
	})

	t.Run("loader failure caches nothing", func(t *testing.T) {
		store, mr := setupTestCache(t)
		ctx := context.Background()
		loadErr := errors.New("store unavailable")

		_, err := GetOrLoad(ctx, store, "key", time.Minute, func(ctx context.Context) (payload, error) {
			return payload{}, loadErr
		})
		if err != loadErr {
			t.Errorf("expected the loader error, got %v", err)
		}
		if mr.Exists("key") {
			t.Error("expected nothing cached after a loader failure")
		}
	})

	t.Run("corrupt entry is rebuilt", func(t *testing.T) {
		store, _ := setupTestCache(t)
		ctx := context.Background()

		if err := store.Set(ctx, "key", []byte("{not json"), time.Minute); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := GetOrLoad(ctx, store, "key", time.Minute, func(ctx context.Context) (payload, error) {
			return payload{Value: "rebuilt"}, nil
		})
		if err != nil {
			t.Fatalf("GetOrLoad failed: %v", err)
		}
		if got.Value != "rebuilt" {
			t.Errorf("expected the rebuilt value, got %+v", got)
		}
	})
}

func TestCacheKeys(t *testing.T) {
	if CafeListKey() != "public:cafes" {
		t.Errorf("unexpected cafe list key %q", CafeListKey())
	}
	if MenuKey("cafe-1") != "public:menu:cafe-1" {
		t.Errorf("unexpected menu key %q", MenuKey("cafe-1"))
	}
}
