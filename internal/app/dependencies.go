package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

const (
	tierKV    = "kv"
	tierTable = "table"
)

// DependencyOptions overrides parts of the container, mainly for tests.
// Zero values mean "build from configuration".
type DependencyOptions struct {
	DB         *gorm.DB
	HTTPClient external.HTTPClient
	Logger     *zap.Logger
	Clock      ports.Clock
}

type DependencyContainer struct {
	config   *config.Config
	db       *gorm.DB
	ownsDB   bool
	logger   *infrastructure.ZapLoggerAdapter
	registry *prometheus.Registry

	cacheProvider external.ManagedCacheProvider
	breaker       *external.BreakerWeatherProvider
	health        *infrastructure.SystemHealthChecker

	ports *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.initializeLogger(opts.Logger); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	if err := container.initializeDatabase(opts.DB); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(opts); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogger(base *zap.Logger) error {
	if base != nil {
		c.logger = infrastructure.NewZapLoggerAdapter(base)
		return nil
	}

	logger, err := infrastructure.NewZapLogger(c.config.Log)
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

func (c *DependencyContainer) initializeDatabase(db *gorm.DB) error {
	if db == nil {
		c.logger.Info("Initializing database connection...",
			ports.F("host", c.config.Database.Host),
			ports.F("name", c.config.Database.Name))

		opened, err := gorm.Open(postgres.Open(c.config.Database.GetDSN()), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		db = opened
		c.ownsDB = true
	}
	c.db = db

	c.logger.Info("Running database migrations...")
	if err := database.Migrate(c.db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.logger.Info("Database ready")
	return nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	var clock ports.Clock = infrastructure.SystemClock{}
	if opts.Clock != nil {
		clock = opts.Clock
	}

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := infrastructure.NewPrometheusMetricsCollector(c.registry)

	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheProvider = cacheProvider

	weatherConfig := configProvider.GetWeatherConfig()
	tiers := []external.CacheTier{
		{Name: tierKV, Cache: external.NewWeatherCacheAdapter(cacheProvider, weatherConfig, clock)},
	}
	if c.config.Cache.UseTable {
		tiers = append(tiers, external.CacheTier{Name: tierTable, Cache: database.NewWeatherCacheRepository(c.db)})
	}
	weatherCache, err := external.NewTieredWeatherCache(external.TieredWeatherCacheParams{
		Tiers:   tiers,
		Config:  weatherConfig,
		Clock:   clock,
		Logger:  c.logger,
		Metrics: metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather cache: %w", err)
	}

	c.logger.Info("Cache initialized",
		ports.F("type", c.config.Cache.Type.String()),
		ports.F("table_tier", c.config.Cache.UseTable))

	upstream := configProvider.GetProviderConfig()
	owm := external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  upstream.APIKey,
		BaseURL: upstream.BaseURL,
		Timeout: upstream.Timeout,
		Client:  opts.HTTPClient,
		Logger:  c.logger,
	})
	c.breaker = external.NewBreakerWeatherProvider(
		external.NewWeatherProviderLoggingDecorator(owm, c.logger),
		external.BreakerSettings{
			Name:             owm.GetProviderName(),
			MaxRequests:      upstream.BreakerMaxRequests,
			Interval:         upstream.BreakerInterval,
			Timeout:          upstream.BreakerTimeout,
			FailureThreshold: upstream.BreakerFailureThreshold,
		},
		c.logger,
		metrics,
	)

	c.health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(c.db),
		CacheChecker:    infrastructure.NewCacheHealthChecker(cacheProvider, c.config.Cache.Type.String()),
		ProviderChecker: infrastructure.NewWeatherProviderHealthChecker(c.breaker),
	})

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: c.breaker,
		WeatherCache:    weatherCache,

		UserRepository:     database.NewUserRepositoryAdapter(c.db),
		FavoriteRepository: database.NewFavoriteRepositoryAdapter(c.db),
		HistoryRepository:  database.NewHistoryRepositoryAdapter(c.db),

		CacheProvider: cacheProvider,
		CacheMetrics:  cacheProvider,

		ConfigProvider: configProvider,
		Logger:         c.logger,
		Clock:          clock,
		Metrics:        metrics,
	}

	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Registry is the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

func (c *DependencyContainer) HealthChecker() ports.SystemHealthChecker {
	return c.health
}

// Cleanup releases the cache connection, the database pool when the container opened it,
// and flushes the logger.
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if c.cacheProvider != nil {
		if err := c.cacheProvider.Close(); err != nil {
			c.logger.Warn("Error closing cache provider", ports.F("error", err))
			firstErr = err
		}
	}

	if c.db != nil && c.ownsDB {
		if sqlDB, err := c.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				c.logger.Warn("Error closing database", ports.F("error", err))
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}

	if c.logger != nil {
		_ = c.logger.Sync()
	}
	return firstErr
}
