// Package cache holds the redis-backed read-through cache for catalog
// searches. The catalog itself is in memory, but cached results keep repeat
// listing queries from re-filtering and re-sorting on every page load, and
// the keys give operators visibility into hot queries.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"expo-ticketing/internal/models"
)

type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache wraps the redis client. A nil client disables the cache:
// Get always misses and Set is a no-op, so the service runs without redis.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

func (c *SearchCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *SearchCache) Get(ctx context.Context, key string) ([]models.Exhibition, bool) {
	if !c.Enabled() {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var out []models.Exhibition
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *SearchCache) Set(ctx context.Context, key string, exhibitions []models.Exhibition) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(exhibitions)
	if err != nil {
		return
	}
	// Best effort: a failed write just means the next read misses.
	c.client.Set(ctx, key, raw, c.ttl)
}
