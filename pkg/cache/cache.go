// Package cache implements the result cache of §4.6: a flat key-value
// store with per-key TTL, read-through/write-through, where a put may fail
// silently and a get must treat any deserialisation error as a miss.
package cache

import (
	"context"
	"time"
)

// Cache is the narrow surface the orchestrator needs. It deliberately
// carries none of a general-purpose session/lock/search store — those
// concerns belong to other services, not the divination result cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	HealthCheck(ctx context.Context) error
}
