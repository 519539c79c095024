package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weatherdash.app/internal/config"
)

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 3001, AllowedOrigin: "http://localhost:3000"},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     "owm-key",
			OpenWeatherMapBaseURL: "https://api.openweathermap.org/data/2.5",
			TimeoutSeconds:        10,
			CurrentTTLMinutes:     10,
			ForecastTTLMinutes:    30,
		},
		History: config.HistoryConfig{DedupMinutes: 10, ListLimit: 10},
		Breaker: config.BreakerConfig{MaxRequests: 1, IntervalSeconds: 60, TimeoutSeconds: 30, FailureThreshold: 5},
	}

	provider := NewConfigProviderAdapter(cfg)

	weather := provider.GetWeatherConfig()
	assert.Equal(t, 10*time.Minute, weather.CurrentTTL)
	assert.Equal(t, 30*time.Minute, weather.ForecastTTL)

	history := provider.GetHistoryConfig()
	assert.Equal(t, 10*time.Minute, history.DedupWindow)
	assert.Equal(t, 10, history.ListLimit)

	server := provider.GetServerConfig()
	assert.Equal(t, 3001, server.Port)
	assert.Equal(t, "http://localhost:3000", server.AllowedOrigin)

	upstream := provider.GetProviderConfig()
	assert.Equal(t, "owm-key", upstream.APIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", upstream.BaseURL)
	assert.Equal(t, 10*time.Second, upstream.Timeout)
	assert.Equal(t, uint32(1), upstream.BreakerMaxRequests)
	assert.Equal(t, time.Minute, upstream.BreakerInterval)
	assert.Equal(t, 30*time.Second, upstream.BreakerTimeout)
	assert.Equal(t, uint32(5), upstream.BreakerFailureThreshold)
}
