package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/witnessos/engine-core/internal/monitoring"
	"github.com/witnessos/engine-core/pkg/cache"
	"github.com/witnessos/engine-core/pkg/logger"
)

// DefaultTTL is the result-cache TTL of §4.6 when the caller does not
// override it.
const DefaultTTL = 24 * time.Hour

// ResultCache narrows pkg/cache.Cache to the typed get/put pair the
// orchestrator needs, folding in the "any deserialisation error is a miss"
// and "a put may fail silently" rules of §4.6.
type ResultCache struct {
	backend cache.Cache
	logger  logger.Logger
	ttl     time.Duration
}

// NewResultCache wraps backend with the default TTL, or ttl if positive.
func NewResultCache(backend cache.Cache, log logger.Logger, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{backend: backend, logger: log, ttl: ttl}
}

// Get decodes a cache hit into out and reports true; it reports false on a
// miss, an expired entry, or an entry that does not deserialise into out.
func (rc *ResultCache) Get(ctx context.Context, key string, out any) bool {
	raw, err := rc.backend.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		rc.logger.Warn("cache entry failed to deserialise, treating as miss", "key", key, "error", err)
		return false
	}
	return true
}

// Put writes value under key. Failures are logged and swallowed: the
// caller's response is never blocked or failed by a cache outage.
func (rc *ResultCache) Put(ctx context.Context, key string, value any) {
	if err := rc.backend.Set(ctx, key, value, rc.ttl); err != nil {
		rc.logger.Warn("cache put failed, continuing without cache", "key", key, "error", err)
		monitoring.RecordCacheOperation("put", "error")
	}
}
