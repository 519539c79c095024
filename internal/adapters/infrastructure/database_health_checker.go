package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
)

// DatabaseHealthChecker pings the relational store and runs a trivial query through gorm
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if d.db == nil {
		return unhealthy("database", "database is not configured")
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return unhealthy("database", "no connection pool: "+err.Error())
	}

	start := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		return unhealthy("database", err.Error())
	}

	var one int
	if err := d.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return unhealthy("database", err.Error())
	}

	pool := sqlDB.Stats()
	return ports.HealthStatus{
		Component: "database",
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"connected":        true,
			"latency_ms":       time.Since(start).Milliseconds(),
			"open_connections": pool.OpenConnections,
			"in_use":           pool.InUse,
		},
	}
}

func unhealthy(component, reason string) ports.HealthStatus {
	return ports.HealthStatus{
		Component: component,
		Status:    ports.HealthStatusUnhealthy,
		Error:     reason,
	}
}
