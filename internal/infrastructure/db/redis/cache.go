package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clubstack/inventory-system/internal/api/metrics"
)

const listingTTL = 30 * time.Second

// ListingCache caches the serialized public inventory listings under
// "inventory:*" keys. Entries are short-lived; writes additionally drop the
// whole key space so stale listings never outlive an inventory change.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache wraps the given Redis client. A non-positive ttl falls back
// to the default.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = listingTTL
	}
	return &ListingCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return payload, nil
}

func (c *ListingCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate deletes every listing key. SCAN keeps the walk incremental so a
// large key space never blocks the server the way KEYS would.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "inventory:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache invalidate: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	return nil
}
