package external

import (
	"context"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// CacheTier is one named layer of the tiered weather cache
type CacheTier struct {
	Name  string
	Cache ports.WeatherCache
}

// TieredWeatherCache reads tiers in order and back-fills faster tiers from a fresh hit in a slower one.
// Writes go to every tier; a tier failure is logged and only fails the call when every tier failed.
type TieredWeatherCache struct {
	tiers   []CacheTier
	config  ports.WeatherConfig
	clock   ports.Clock
	logger  ports.Logger
	metrics ports.MetricsCollector
}

type TieredWeatherCacheParams struct {
	Tiers   []CacheTier
	Config  ports.WeatherConfig
	Clock   ports.Clock
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewTieredWeatherCache(params TieredWeatherCacheParams) (*TieredWeatherCache, error) {
	if len(params.Tiers) == 0 {
		return nil, errors.NewConfigurationError("at least one cache tier is required", nil)
	}
	if params.Clock == nil || params.Logger == nil || params.Metrics == nil {
		return nil, errors.NewConfigurationError("clock, logger and metrics are required", nil)
	}

	return &TieredWeatherCache{
		tiers:   params.Tiers,
		config:  params.Config,
		clock:   params.Clock,
		logger:  params.Logger,
		metrics: params.Metrics,
	}, nil
}

func (c *TieredWeatherCache) Get(ctx context.Context, city string, kind ports.WeatherKind) (*ports.WeatherCacheEntry, error) {
	ttl := c.config.TTL(kind)
	failures := 0

	for i, tier := range c.tiers {
		entry, err := tier.Cache.Get(ctx, city, kind)
		if err != nil {
			c.metrics.RecordCacheMiss(tier.Name, kind)
			if !errors.IsNotFoundError(err) {
				failures++
				c.logger.Warn("Weather cache tier read failed",
					ports.F("tier", tier.Name),
					ports.F("city", city),
					ports.F("error", err))
			}
			continue
		}

		if now := c.clock.Now(); now.Sub(entry.UpdatedAt) >= ttl {
			c.metrics.RecordCacheMiss(tier.Name, kind)
			continue
		}

		c.metrics.RecordCacheHit(tier.Name, kind)
		c.backfill(ctx, c.tiers[:i], entry)
		return entry, nil
	}

	if failures == len(c.tiers) {
		return nil, errors.NewCacheError("all weather cache tiers failed", nil)
	}
	return nil, errors.NewNotFoundError("cache miss")
}

func (c *TieredWeatherCache) Put(ctx context.Context, entry *ports.WeatherCacheEntry) error {
	var lastErr error
	failures := 0

	for _, tier := range c.tiers {
		if err := tier.Cache.Put(ctx, entry); err != nil {
			failures++
			lastErr = err
			c.logger.Warn("Weather cache tier write failed",
				ports.F("tier", tier.Name),
				ports.F("city", entry.City),
				ports.F("error", err))
		}
	}

	if failures == len(c.tiers) {
		return errors.NewCacheError("all weather cache tiers failed", lastErr)
	}
	return nil
}

func (c *TieredWeatherCache) backfill(ctx context.Context, tiers []CacheTier, entry *ports.WeatherCacheEntry) {
	for _, tier := range tiers {
		if err := tier.Cache.Put(ctx, entry); err != nil {
			c.logger.Warn("Weather cache back-fill failed",
				ports.F("tier", tier.Name),
				ports.F("city", entry.City),
				ports.F("error", err))
		}
	}
}
