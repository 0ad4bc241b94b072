package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/witnessos/engine-core/pkg/logger"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// noopCache is an in-memory, process-local fallback used when the external
// cache is unavailable. Data is not shared across replicas and is lost on
// restart; reads after TTL expiry behave as misses, same as the real cache.
type noopCache struct {
	m      map[string]entry
	mu     sync.RWMutex
	logger logger.Logger
	ttl    time.Duration
}

func NewNoopCache(log logger.Logger, defaultTTL time.Duration) Cache {
	log.Warn("result cache unavailable; using in-memory fallback")
	return &noopCache{m: make(map[string]entry), logger: log, ttl: defaultTTL}
}

func (n *noopCache) Get(ctx context.Context, key string) ([]byte, error) {
	n.mu.RLock()
	e, ok := n.m[key]
	n.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("key not found: %s", key)
	}
	if time.Now().After(e.expiresAt) {
		n.mu.Lock()
		delete(n.m, key)
		n.mu.Unlock()
		return nil, fmt.Errorf("key expired: %s", key)
	}
	return e.data, nil
}

func (n *noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		jb, err := json.Marshal(v)
		if err != nil {
			return err
		}
		b = jb
	}
	if ttl <= 0 {
		ttl = n.ttl
	}
	n.mu.Lock()
	n.m[key] = entry{data: b, expiresAt: time.Now().Add(ttl)}
	n.mu.Unlock()
	return nil
}

func (n *noopCache) Delete(ctx context.Context, key string) error {
	n.mu.Lock()
	delete(n.m, key)
	n.mu.Unlock()
	return nil
}

// HealthCheck always reports degraded mode: there is no external connectivity.
func (n *noopCache) HealthCheck(ctx context.Context) error {
	return fmt.Errorf("in-memory fallback cache in use (no external cache connected)")
}
