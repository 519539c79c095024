package ports

import (
	"time"
)

// WeatherConfig represents weather service configuration
type WeatherConfig struct {
	CurrentTTL  time.Duration
	ForecastTTL time.Duration
}

// TTL returns the freshness window for a payload kind
func (c WeatherConfig) TTL(kind WeatherKind) time.Duration {
	if kind == WeatherKindForecast {
		return c.ForecastTTL
	}
	return c.CurrentTTL
}

// HistoryConfig represents search history configuration
type HistoryConfig struct {
	DedupWindow time.Duration
	ListLimit   int
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port          int
	AllowedOrigin string
}

// ProviderConfig configures the upstream weather API client and the circuit breaker guarding it
type ProviderConfig struct {
	APIKey                  string
	BaseURL                 string
	Timeout                 time.Duration
	BreakerMaxRequests      uint32
	BreakerInterval         time.Duration
	BreakerTimeout          time.Duration
	BreakerFailureThreshold uint32
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetHistoryConfig() HistoryConfig
	GetServerConfig() ServerConfig
	GetProviderConfig() ProviderConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(tier string, kind WeatherKind)
	RecordCacheMiss(tier string, kind WeatherKind)
	RecordProviderCall(kind WeatherKind, outcome string, duration time.Duration)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}
