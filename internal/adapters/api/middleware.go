package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

const (
	headerRequestID = "X-Request-ID"
	headerUserID    = "x-user-id"

	contextRequestID = "request_id"
	contextUserID    = "user_id"
)

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(contextRequestID, requestID)
		c.Header(headerRequestID, requestID)
		c.Next()
	}
}

// accessLogMiddleware logs every request once it completes and records its latency
func (s *HTTPServerAdapter) accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		duration := time.Since(start)

		s.metrics.RecordHTTPRequest(c.Request.Method, route, status, duration)
		s.logger.Info("HTTP request",
			ports.F("request_id", c.GetString(contextRequestID)),
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", status),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("client_ip", c.ClientIP()))
	}
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if allowedOrigin == "" || allowedOrigin == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = []string{allowedOrigin}
	}
	config.AllowHeaders = append(config.AllowHeaders, headerUserID, headerRequestID)
	config.ExposeHeaders = []string{headerRequestID}
	return cors.New(config)
}

// requireUser resolves the caller from the x-user-id header before any handler runs.
// The header is trusted as sent; there is no verification.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(headerUserID)
		if raw == "" {
			abortWithError(c, errors.NewValidationError("User ID is required"))
			return
		}

		userID, ok := validation.ParsePositiveID(raw)
		if !ok {
			abortWithError(c, errors.NewUnauthorizedError("Unauthorized: User ID is missing or invalid"))
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

func userIDFrom(c *gin.Context) uint {
	return c.GetUint(contextUserID)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
