// Package cache provides the read-through cache used for quote calculations.
package cache

import (
	"context"
	"time"
)

// Cache stores derived calculation results keyed by their inputs. It never
// holds loan state; a miss is always recoverable by recomputing.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
