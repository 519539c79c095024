package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
)

const (
	healthOK    = "ok"
	healthError = "error"
)

// storageComponents take the service down when unhealthy
var storageComponents = []string{"database", "cache"}

type ComponentHealth struct {
	Status  string                 `json:"status"`
	Error   string                 `json:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	response := make(map[string]ComponentHealth, len(results))
	for name, result := range results {
		component := ComponentHealth{Status: healthOK, Details: result.Details}
		if !result.IsHealthy() {
			component.Status = healthError
			component.Error = result.Error
		}
		response[name] = component
	}

	status := http.StatusOK
	for _, name := range storageComponents {
		if result, ok := results[name]; ok && !result.IsHealthy() {
			status = http.StatusServiceUnavailable
			s.logger.Warn("Health check failed", ports.F("component", name), ports.F("error", result.Error))
		}
	}

	c.JSON(status, response)
}
