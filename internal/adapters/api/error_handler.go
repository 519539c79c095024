package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// errorMiddleware is the single place where errors become HTTP responses.
// Handlers and middleware report failures with c.Error and write nothing.
func (s *HTTPServerAdapter) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("Request failed",
				ports.F("request_id", c.GetString(contextRequestID)),
				ports.F("path", c.Request.URL.Path),
				ports.F("status", status),
				ports.F("error", err))
		} else {
			s.logger.Debug("Request rejected",
				ports.F("request_id", c.GetString(contextRequestID)),
				ports.F("path", c.Request.URL.Path),
				ports.F("status", status),
				ports.F("error", err))
		}

		c.JSON(status, ErrorResponse{Message: message})
	}
}

// statusFor maps an error to its HTTP status and client-safe message
func statusFor(err error) (int, string) {
	appErr, ok := errors.As(err)
	if !ok {
		return http.StatusInternalServerError, "Internal Server Error"
	}

	switch appErr.Type {
	case errors.ValidationError:
		return http.StatusBadRequest, appErr.Message
	case errors.UnauthorizedError:
		return http.StatusUnauthorized, appErr.Message
	case errors.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errors.ConflictError:
		return http.StatusConflict, appErr.Message
	case errors.UpstreamError:
		return appErr.Status, appErr.Message
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	response := gin.H{}
	if s.cacheMetrics != nil {
		response["cache"] = s.cacheMetrics.GetStats()
	}
	c.JSON(http.StatusOK, response)
}
