package infrastructure

import (
	"time"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns the freshness windows for each payload kind
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		CurrentTTL:  c.config.Weather.CurrentTTL(),
		ForecastTTL: c.config.Weather.ForecastTTL(),
	}
}

// GetHistoryConfig returns search history configuration
func (c *ConfigProviderAdapter) GetHistoryConfig() ports.HistoryConfig {
	return ports.HistoryConfig{
		DedupWindow: time.Duration(c.config.History.DedupMinutes) * time.Minute,
		ListLimit:   c.config.History.ListLimit,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:          c.config.Server.Port,
		AllowedOrigin: c.config.Server.AllowedOrigin,
	}
}

// GetProviderConfig returns the OpenWeatherMap client and circuit breaker settings
func (c *ConfigProviderAdapter) GetProviderConfig() ports.ProviderConfig {
	weather, breaker := c.config.Weather, c.config.Breaker
	return ports.ProviderConfig{
		APIKey:                  weather.OpenWeatherMapKey,
		BaseURL:                 weather.OpenWeatherMapBaseURL,
		Timeout:                 seconds(weather.TimeoutSeconds),
		BreakerMaxRequests:      breaker.MaxRequests,
		BreakerInterval:         seconds(breaker.IntervalSeconds),
		BreakerTimeout:          seconds(breaker.TimeoutSeconds),
		BreakerFailureThreshold: breaker.FailureThreshold,
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
