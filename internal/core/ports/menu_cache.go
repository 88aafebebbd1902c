package ports

import "context"

// MenuCache caches the serialized public menu listing. The menu changes
// rarely and is read on every storefront load, so listings are served from
// cache and refreshed on expiry or invalidation.
type MenuCache interface {
	// Get returns the cached payload. The second return reports whether the
	// cache held a value; a miss is not an error.
	Get(ctx context.Context) ([]byte, bool, error)

	// Set stores the payload until the cache's TTL expires.
	Set(ctx context.Context, payload []byte) error

	// Invalidate drops the cached payload. Called after menu edits.
	Invalidate(ctx context.Context) error
}
