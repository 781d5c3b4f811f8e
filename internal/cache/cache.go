// Package cache memoizes comparison responses in Redis. All methods are
// nil-safe so callers can run without a configured Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns nil when addr is empty.
func New(addr string, ttl time.Duration) *ResultCache {
	if addr == "" {
		return nil
	}
	return &ResultCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Key derives a cache key from a request payload.
func Key(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "simrun:" + hex.EncodeToString(sum[:])
}

func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

func (c *ResultCache) Set(ctx context.Context, key string, value []byte) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, value, c.ttl)
}
