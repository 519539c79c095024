package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Application error types grouped by who is at fault

type ErrorType int

// Caller errors - bad input or identity, detected before any side effect
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeUnauthorized
	ErrorTypeNotFound
	ErrorTypeConflict

	// Infrastructure errors - database, cache and the upstream weather provider
	ErrorTypeDatabase
	ErrorTypeCache
	ErrorTypeUpstream

	// System errors
	ErrorTypeConfiguration
	ErrorTypeInternal
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeUnauthorized:
		return "UNAUTHORIZED_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeConflict:
		return "CONFLICT_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeUpstream:
		return "UPSTREAM_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	case ErrorTypeInternal:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the adapters
const (
	ValidationError    = ErrorTypeValidation
	UnauthorizedError  = ErrorTypeUnauthorized
	NotFoundError      = ErrorTypeNotFound
	ConflictError      = ErrorTypeConflict
	DatabaseError      = ErrorTypeDatabase
	CacheError         = ErrorTypeCache
	UpstreamError      = ErrorTypeUpstream
	ConfigurationError = ErrorTypeConfiguration
	InternalError      = ErrorTypeInternal
)

// AppError is the single error shape passed from adapters and use cases to the HTTP layer.
// Status is only meaningful for upstream errors, where the provider's HTTP status is passed through.
type AppError struct {
	Type    ErrorType
	Message string
	Status  int
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Caller error constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewUnauthorizedError(message string) *AppError {
	return New(UnauthorizedError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewConflictError(message string, cause error) *AppError {
	return Wrap(ConflictError, message, cause)
}

// Infrastructure error constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(CacheError, message, cause)
}

// NewUpstreamError records a structured failure reported by the weather provider.
// A status outside the 4xx/5xx range is coerced to 502.
func NewUpstreamError(status int, message string) *AppError {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}
	return &AppError{
		Type:    UpstreamError,
		Message: message,
		Status:  status,
	}
}

// NewUpstreamUnavailableError is used when the provider could not be reached at all.
func NewUpstreamUnavailableError(message string, cause error) *AppError {
	return &AppError{
		Type:    UpstreamError,
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Cause:   cause,
	}
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

func NewInternalError(message string, cause error) *AppError {
	return Wrap(InternalError, message, cause)
}

// As extracts the AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Helper functions for error type checking
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

func IsNotFoundError(err error) bool {
	return IsType(err, NotFoundError)
}

func IsConflictError(err error) bool {
	return IsType(err, ConflictError)
}

func IsValidationError(err error) bool {
	return IsType(err, ValidationError)
}

func IsUnauthorizedError(err error) bool {
	return IsType(err, UnauthorizedError)
}

func IsDatabaseError(err error) bool {
	return IsType(err, DatabaseError)
}

func IsUpstreamError(err error) bool {
	return IsType(err, UpstreamError)
}

func IsConfigurationError(err error) bool {
	return IsType(err, ConfigurationError)
}
