// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/core/history"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port          int
	AllowedOrigin string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	server           *http.Server
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	favoritesUseCase FavoritesUseCase
	historyUseCase   HistoryUseCase
	healthChecker    ports.SystemHealthChecker
	cacheMetrics     ports.CacheMetrics
	metrics          ports.MetricsCollector
	gatherer         prometheus.Gatherer
	logger           ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	GetCurrentWeather(ctx context.Context, request weather.WeatherRequest) (*ports.WeatherSnapshot, error)
	GetForecast(ctx context.Context, request weather.WeatherRequest) (*ports.ForecastSnapshot, error)
}

type FavoritesUseCase interface {
	AddFavorite(ctx context.Context, params favorites.AddFavoriteParams) (*favorites.FavoriteCity, error)
	ListFavorites(ctx context.Context, userID uint) ([]*favorites.FavoriteCity, error)
	DeleteFavorite(ctx context.Context, userID, favoriteID uint) error
}

type HistoryUseCase interface {
	ListHistory(ctx context.Context, userID uint) ([]*history.SearchHistoryItem, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	WeatherUseCase   WeatherUseCase
	FavoritesUseCase FavoritesUseCase
	HistoryUseCase   HistoryUseCase
	HealthChecker    ports.SystemHealthChecker
	CacheMetrics     ports.CacheMetrics
	Metrics          ports.MetricsCollector
	Gatherer         prometheus.Gatherer
	Logger           ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := registerValidations(); err != nil {
		return nil, err
	}

	server := &HTTPServerAdapter{
		router:           gin.New(),
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		favoritesUseCase: opts.FavoritesUseCase,
		historyUseCase:   opts.HistoryUseCase,
		healthChecker:    opts.HealthChecker,
		cacheMetrics:     opts.CacheMetrics,
		metrics:          opts.Metrics,
		gatherer:         opts.Gatherer,
		logger:           opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.FavoritesUseCase == nil {
		return errors.NewValidationError("favorites use case is required")
	}
	if opts.HistoryUseCase == nil {
		return errors.NewValidationError("history use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Metrics == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// registerValidations adds the custom binding tags used by request structs
func registerValidations() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("unexpected gin validator engine", nil)
	}
	if err := engine.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return errors.NewConfigurationError("failed to register notblank validation", err)
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		s.accessLogMiddleware(),
		corsMiddleware(s.config.AllowedOrigin),
		s.errorMiddleware(),
	)

	api := s.router.Group("/api")
	{
		weatherRoutes := api.Group("/weather", requireUser())
		{
			weatherRoutes.GET("/current/:city", s.getCurrentWeather)
			weatherRoutes.GET("/forecast/:city", s.getForecast)
			weatherRoutes.POST("/favorites", s.addFavorite)
			weatherRoutes.GET("/favorites", s.listFavorites)
			weatherRoutes.DELETE("/favorites/:id", s.deleteFavorite)
			weatherRoutes.GET("/history", s.getHistory)
		}
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/health", s.getHealth)
	if s.gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Not Found"})
	})
}

// Start serves HTTP until Shutdown is called
func (s *HTTPServerAdapter) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
