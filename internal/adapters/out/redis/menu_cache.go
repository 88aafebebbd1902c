// Package redis caches the public menu listing.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const menuKey = "menu:public"

// MenuCache implements ports.MenuCache on a redis client.
// The cached value is the serialized public listing; it expires after the
// TTL and is dropped eagerly when the menu is edited.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache creates a cache with the given TTL.
func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

// Get returns the cached listing payload and whether the key was present.
func (c *MenuCache) Get(ctx context.Context) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, menuKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the listing payload for the cache TTL.
func (c *MenuCache) Set(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, menuKey, payload, c.ttl).Err()
}

// Invalidate drops the cached listing.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, menuKey).Err()
}
