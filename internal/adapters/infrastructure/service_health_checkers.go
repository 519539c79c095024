package infrastructure

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"weatherdash.app/internal/ports"
)

// Pinger is implemented by cache providers that can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports whether the key-value cache answers
type CacheHealthChecker struct {
	cache     Pinger
	cacheType string
}

func NewCacheHealthChecker(cache Pinger, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	start := time.Now()
	if err := c.cache.Ping(ctx); err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.HealthStatusHealthy
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	return status
}

// BreakerState is implemented by providers guarded by a circuit breaker
type BreakerState interface {
	State() gobreaker.State
}

// WeatherProviderHealthChecker reports the circuit breaker state of the weather provider.
// An open breaker is reported but does not make the service unhealthy.
type WeatherProviderHealthChecker struct {
	provider BreakerState
}

func NewWeatherProviderHealthChecker(provider BreakerState) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{provider: provider}
}

func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	state := w.provider.State()
	return ports.HealthStatus{
		Component: "weatherProvider",
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"circuit": state.String(),
		},
	}
}
