package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	History  HistoryConfig  `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Breaker  BreakerConfig  `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port          int    `envconfig:"SERVER_PORT" default:"3001" validate:"min=1,max=65535"`
	AllowedOrigin string `envconfig:"CORS_ALLOWED_ORIGIN" default:"http://localhost:3000"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost" validate:"required"`
	Port     int    `envconfig:"DB_PORT" default:"5432" validate:"min=1,max=65535"`
	User     string `envconfig:"DB_USER" default:"postgres" validate:"required"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherdash" validate:"required"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY" validate:"required"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5" validate:"url,startswith=http"`
	TimeoutSeconds        int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10" validate:"min=1"`
	CurrentTTLMinutes     int    `envconfig:"WEATHER_CURRENT_TTL_MINUTES" default:"10" validate:"min=1,max=1440"`
	ForecastTTLMinutes    int    `envconfig:"WEATHER_FORECAST_TTL_MINUTES" default:"30" validate:"min=1,max=1440"`
}

func (w WeatherConfig) CurrentTTL() time.Duration {
	return time.Duration(w.CurrentTTLMinutes) * time.Minute
}

func (w WeatherConfig) ForecastTTL() time.Duration {
	return time.Duration(w.ForecastTTLMinutes) * time.Minute
}

type HistoryConfig struct {
	DedupMinutes int `envconfig:"HISTORY_DEDUP_MINUTES" default:"10" validate:"min=0,max=1440"`
	ListLimit    int `envconfig:"HISTORY_LIST_LIMIT" default:"10" validate:"min=1,max=100"`
}

// CacheType represents the type of key-value cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type     CacheType   `envconfig:"CACHE_TYPE" default:"memory" validate:"cachetype"`
	UseTable bool        `envconfig:"CACHE_USE_TABLE" default:"true"`
	Redis    RedisConfig `split_words:"true" validate:"-"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0" validate:"min=0,max=15"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5" validate:"min=1"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3" validate:"min=1"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3" validate:"min=1"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weatherdash:"`
}

// BreakerConfig tunes the circuit breaker in front of the weather provider
type BreakerConfig struct {
	MaxRequests      uint32 `envconfig:"BREAKER_MAX_REQUESTS" default:"1" validate:"min=1"`
	IntervalSeconds  int    `envconfig:"BREAKER_INTERVAL_SECONDS" default:"60" validate:"min=0"`
	TimeoutSeconds   int    `envconfig:"BREAKER_TIMEOUT_SECONDS" default:"30" validate:"min=1"`
	FailureThreshold uint32 `envconfig:"BREAKER_FAILURE_THRESHOLD" default:"5" validate:"min=1"`
}

type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Development bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SeedConfig is the subset of Config the seed command needs; it has no provider settings
type SeedConfig struct {
	Database DatabaseConfig `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

func LoadSeedConfig() (*SeedConfig, error) {
	var config SeedConfig
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))
	if err := check(&config); err != nil {
		return nil, err
	}
	if config.Cache.Type == CacheTypeRedis {
		if err := check(&config.Cache.Redis); err != nil {
			return nil, err
		}
	}

	return &config, nil
}

var validate = newValidator()

// newValidator reports failing fields by their environment variable name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("envconfig")
	})
	_ = v.RegisterValidation("cachetype", func(fl validator.FieldLevel) bool {
		return CacheType(fl.Field().Int()).IsValid()
	})
	return v
}

// Validate checks every section; Redis settings are only checked when Redis is the cache
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	if err := check(c); err != nil {
		return err
	}
	if c.Cache.Type == CacheTypeRedis {
		return check(&c.Cache.Redis)
	}
	return nil
}

func check(section interface{}) error {
	err := validate.Struct(section)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.NewConfigurationError("invalid configuration", err)
	}

	fe := fieldErrs[0]
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("%s is invalid: got %v, want %s", fe.Field(), fe.Value(), rule), err)
}
