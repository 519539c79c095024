package infrastructure

import (
	"context"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
)

const healthCheckTimeout = 3 * time.Second

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	CacheChecker    ports.HealthChecker
	ProviderChecker ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}
	if config.ProviderChecker != nil {
		checkers["weatherProvider"] = config.ProviderChecker
	}

	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll runs every component check concurrently, each bounded by a timeout
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)
	results["server"] = ports.HealthStatus{Component: "server", Status: ports.HealthStatusHealthy}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	return results
}
