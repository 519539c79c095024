package external

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// cachedPayload is the JSON envelope stored under each key-value cache key
type cachedPayload struct {
	CityID      int64           `json:"city_id"`
	CityName    string          `json:"city_name"`
	CountryCode string          `json:"country_code"`
	Data        json.RawMessage `json:"data"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// WeatherCacheAdapter bridges a generic CacheProvider to the WeatherCache port.
// Keys expire when the payload stops being fresh.
type WeatherCacheAdapter struct {
	cacheProvider ports.CacheProvider
	config        ports.WeatherConfig
	clock         ports.Clock
}

// NewWeatherCacheAdapter creates a weather cache adapter using generic cache provider
func NewWeatherCacheAdapter(cacheProvider ports.CacheProvider, config ports.WeatherConfig, clock ports.Clock) *WeatherCacheAdapter {
	return &WeatherCacheAdapter{
		cacheProvider: cacheProvider,
		config:        config,
		clock:         clock,
	}
}

// WeatherCacheKey builds the key-value cache key for a normalized city and kind
func WeatherCacheKey(city string, kind ports.WeatherKind) string {
	return fmt.Sprintf("weather:%s:%s", city, kind)
}

func (w *WeatherCacheAdapter) Get(ctx context.Context, city string, kind ports.WeatherKind) (*ports.WeatherCacheEntry, error) {
	data, err := w.cacheProvider.Get(ctx, WeatherCacheKey(city, kind))
	if err != nil {
		return nil, err
	}

	var payload cachedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		// an undecodable entry would otherwise keep missing until it expires
		_ = w.cacheProvider.Delete(ctx, WeatherCacheKey(city, kind))
		return nil, errors.NewCacheError("failed to deserialize cached weather", err)
	}

	return &ports.WeatherCacheEntry{
		City:        city,
		Kind:        kind,
		CityID:      payload.CityID,
		CityName:    payload.CityName,
		CountryCode: payload.CountryCode,
		Data:        payload.Data,
		UpdatedAt:   payload.UpdatedAt,
	}, nil
}

// Put stores the entry for whatever is left of its freshness window.
// An entry that is already stale is not stored.
func (w *WeatherCacheAdapter) Put(ctx context.Context, entry *ports.WeatherCacheEntry) error {
	if entry == nil || !entry.Kind.IsValid() || entry.City == "" {
		return errors.NewValidationError("invalid weather cache entry")
	}

	ttl := w.config.TTL(entry.Kind) - w.clock.Now().Sub(entry.UpdatedAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(cachedPayload{
		CityID:      entry.CityID,
		CityName:    entry.CityName,
		CountryCode: entry.CountryCode,
		Data:        entry.Data,
		UpdatedAt:   entry.UpdatedAt,
	})
	if err != nil {
		return errors.NewCacheError("failed to serialize weather data", err)
	}

	return w.cacheProvider.Set(ctx, WeatherCacheKey(entry.City, entry.Kind), data, ttl)
}
