package ports

import (
	"context"
	"encoding/json"
	"time"
)

// CacheProvider defines the contract for key-value caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// CacheMetrics reports the hit counters a cache provider keeps for itself
type CacheMetrics interface {
	GetStats() CacheStats
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	TotalOps    int64     `json:"total_ops"`
	HitRatio    float64   `json:"hit_ratio"`
	LastUpdated time.Time `json:"last_updated"`
}

// WeatherCacheEntry is one kind of payload stored for a city.
// City is the normalized lookup key; the remaining identity fields come from the payload.
type WeatherCacheEntry struct {
	City        string
	Kind        WeatherKind
	CityID      int64
	CityName    string
	CountryCode string
	Data        json.RawMessage
	UpdatedAt   time.Time
}

// WeatherCache stores provider payloads per city and kind.
// Get returns a NotFoundError on miss. Freshness is decided by the caller from UpdatedAt.
type WeatherCache interface {
	Get(ctx context.Context, city string, kind WeatherKind) (*WeatherCacheEntry, error)
	Put(ctx context.Context, entry *WeatherCacheEntry) error
}
