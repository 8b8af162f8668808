package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"expo-ticketing/internal/cache"
	"expo-ticketing/internal/models"
)

func TestSearchCache_DisabledWithoutClient(t *testing.T) {
	c := cache.NewSearchCache(nil, time.Minute)
	assert.False(t, c.Enabled())

	ctx := context.Background()

	// Set is a no-op and Get always misses.
	c.Set(ctx, "search:key", []models.Exhibition{{ID: "1"}})
	got, ok := c.Get(ctx, "search:key")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSearchCache_NilReceiverIsSafe(t *testing.T) {
	var c *cache.SearchCache
	assert.False(t, c.Enabled())

	_, ok := c.Get(context.Background(), "search:key")
	assert.False(t, ok)
	c.Set(context.Background(), "search:key", nil)
}
