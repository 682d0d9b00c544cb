// Package cache provides the Redis-backed response cache used by the
// transport client for list reads.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// New creates a new Redis client and verifies connectivity.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("platform/cache: ping: %w", err)
	}

	return client, nil
}

// ResponseCache is a short-TTL read-through cache for upstream list
// responses. It stores raw response bytes keyed by request path and params.
type ResponseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewResponseCache builds a ResponseCache with the given TTL.
func NewResponseCache(rdb *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{rdb: rdb, ttl: ttl}
}

// GetOrFetch returns the cached bytes for key, calling fetch on a miss and
// storing its result. Cache errors other than a miss degrade to a direct
// fetch; the cache must never make a healthy upstream look unreachable.
func (c *ResponseCache) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return fetch(ctx)
	}
	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		return fetch(ctx)
	}
	body, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if setErr := c.rdb.Set(ctx, key, body, c.ttl).Err(); setErr != nil {
		// Best effort; a failed write only costs the next caller a fetch.
		_ = setErr
	}
	return body, nil
}
