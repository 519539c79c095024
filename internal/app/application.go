package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/core/history"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase   *weather.UseCase
	favoritesUseCase *favorites.UseCase
	historyUseCase   *history.UseCase

	// Adapters
	server *api.HTTPServerAdapter

	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies builds the application on top of an existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	historyUseCase, err := history.NewUseCase(history.UseCaseDependencies{
		Repository: a.ports.HistoryRepository,
		Config:     a.ports.ConfigProvider,
		Clock:      a.ports.Clock,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create history use case: %w", err)
	}
	a.historyUseCase = historyUseCase

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Cache:           a.ports.WeatherCache,
		Recorder:        historyUseCase,
		Config:          a.ports.ConfigProvider,
		Clock:           a.ports.Clock,
		Logger:          a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	favoritesUseCase, err := favorites.NewUseCase(favorites.UseCaseDependencies{
		Repository: a.ports.FavoriteRepository,
		Clock:      a.ports.Clock,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create favorites use case: %w", err)
	}
	a.favoritesUseCase = favoritesUseCase

	return nil
}

func (a *Application) initializeAdapters() error {
	serverConfig := a.ports.ConfigProvider.GetServerConfig()

	server, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:          serverConfig.Port,
			AllowedOrigin: serverConfig.AllowedOrigin,
		},
		WeatherUseCase:   a.weatherUseCase,
		FavoritesUseCase: a.favoritesUseCase,
		HistoryUseCase:   a.historyUseCase,
		HealthChecker:    a.deps.HealthChecker(),
		CacheMetrics:     a.ports.CacheMetrics,
		Metrics:          a.ports.Metrics,
		Gatherer:         a.deps.Registry(),
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.server = server

	return nil
}

// Start blocks serving HTTP until Shutdown is called
func (a *Application) Start() error {
	if err := a.server.Start(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.ports.Logger.Info("Shutting down application...")

	var shutdownErr error
	if err := a.server.Shutdown(ctx); err != nil {
		a.ports.Logger.Error("Error shutting down HTTP server", ports.F("error", err))
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil && shutdownErr == nil {
		shutdownErr = fmt.Errorf("release resources: %w", err)
	}

	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.server.GetRouter()
}
