package external

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const memoryCacheCleanupInterval = 5 * time.Minute

// MemoryCacheProvider keeps weather payloads in process with go-cache.
// Entries are lost on restart and are not shared between replicas.
type MemoryCacheProvider struct {
	store   *gocache.Cache
	counter hitCounter
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		store: gocache.New(gocache.NoExpiration, memoryCacheCleanupInterval),
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	defer c.counter.countOperation()

	value, found := c.store.Get(key)
	if !found {
		c.counter.recordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	data, ok := value.([]byte)
	if !ok {
		c.store.Delete(key)
		return nil, errors.NewCacheError("unexpected value type stored under "+key, nil)
	}

	c.counter.recordHit()
	return data, nil
}

// Set stores a copy of value so callers may reuse their buffer
func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := checkEntry(key, value, ttl); err != nil {
		return err
	}
	defer c.counter.countOperation()

	c.store.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	c.store.Delete(key)
	return nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.store.Flush()
	return nil
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.counter.stats()
}

func (c *MemoryCacheProvider) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op; go-cache's janitor stops when the cache is garbage collected
func (c *MemoryCacheProvider) Close() error {
	return nil
}
