// Package external provides adapters for external services:
// the weather provider, key-value caches and the tiered weather cache.
package external

import (
	"sync"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func checkKey(key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	return nil
}

func checkEntry(key string, value []byte, ttl time.Duration) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}

// hitCounter tracks hits, misses and timed operations of a CacheProvider
type hitCounter struct {
	mu          sync.Mutex
	hits        int64
	misses      int64
	ops         int64
	lastUpdated time.Time
}

func (h *hitCounter) recordHit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits++
	h.lastUpdated = time.Now()
}

func (h *hitCounter) recordMiss() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses++
	h.lastUpdated = time.Now()
}

func (h *hitCounter) countOperation() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops++
}

func (h *hitCounter) stats() ports.CacheStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	lookups := h.hits + h.misses
	ratio := 0.0
	if lookups > 0 {
		ratio = float64(h.hits) / float64(lookups)
	}

	return ports.CacheStats{
		Hits:        h.hits,
		Misses:      h.misses,
		TotalOps:    h.ops,
		HitRatio:    ratio,
		LastUpdated: h.lastUpdated,
	}
}
