package external

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	outcomeSuccess     = "success"
	outcomeClientError = "client_error"
	outcomeFailure     = "failure"
	outcomeRejected    = "rejected"
)

// BreakerSettings configures when the breaker opens and how long it stays open
type BreakerSettings struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// BreakerWeatherProvider fails fast while the upstream provider is unhealthy.
// Only transport failures and 5xx responses count against the breaker; 4xx answers are
// valid results (an unknown city must not open it). Calls are never retried.
type BreakerWeatherProvider struct {
	provider ports.WeatherProvider
	breaker  *gobreaker.CircuitBreaker
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// callResult carries a provider answer through the breaker, including client errors
type callResult struct {
	value interface{}
	err   error
}

func NewBreakerWeatherProvider(provider ports.WeatherProvider, settings BreakerSettings, logger ports.Logger, metrics ports.MetricsCollector) *BreakerWeatherProvider {
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	name := settings.Name
	if name == "" {
		name = provider.GetProviderName()
	}

	return &BreakerWeatherProvider{
		provider: provider,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: settings.MaxRequests,
			Interval:    settings.Interval,
			Timeout:     settings.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					ports.F("name", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			},
		}),
		logger:  logger,
		metrics: metrics,
	}
}

func (b *BreakerWeatherProvider) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherSnapshot, error) {
	value, err := b.execute(ports.WeatherKindCurrent, func() (interface{}, error) {
		return b.provider.GetCurrentWeather(ctx, city)
	})
	if err != nil {
		return nil, err
	}
	return value.(*ports.WeatherSnapshot), nil
}

func (b *BreakerWeatherProvider) GetForecast(ctx context.Context, city string) (*ports.ForecastSnapshot, error) {
	value, err := b.execute(ports.WeatherKindForecast, func() (interface{}, error) {
		return b.provider.GetForecast(ctx, city)
	})
	if err != nil {
		return nil, err
	}
	return value.(*ports.ForecastSnapshot), nil
}

func (b *BreakerWeatherProvider) GetProviderName() string {
	return b.provider.GetProviderName()
}

// State returns the current breaker state
func (b *BreakerWeatherProvider) State() gobreaker.State {
	return b.breaker.State()
}

func (b *BreakerWeatherProvider) execute(kind ports.WeatherKind, fn func() (interface{}, error)) (interface{}, error) {
	start := time.Now()

	result, err := b.breaker.Execute(func() (interface{}, error) {
		value, err := fn()
		if err != nil && countsAsFailure(err) {
			return nil, err
		}
		return callResult{value: value, err: err}, nil
	})

	switch {
	case stderrors.Is(err, gobreaker.ErrOpenState), stderrors.Is(err, gobreaker.ErrTooManyRequests):
		b.metrics.RecordProviderCall(kind, outcomeRejected, time.Since(start))
		return nil, errors.NewUpstreamUnavailableError("weather provider temporarily unavailable", err)
	case err != nil:
		b.metrics.RecordProviderCall(kind, outcomeFailure, time.Since(start))
		return nil, err
	}

	call := result.(callResult)
	if call.err != nil {
		b.metrics.RecordProviderCall(kind, outcomeClientError, time.Since(start))
		return nil, call.err
	}

	b.metrics.RecordProviderCall(kind, outcomeSuccess, time.Since(start))
	return call.value, nil
}

// countsAsFailure reports whether err says the provider itself is unhealthy
func countsAsFailure(err error) bool {
	appErr, ok := errors.As(err)
	if !ok {
		return true
	}
	switch appErr.Type {
	case errors.UpstreamError:
		return appErr.Status >= http.StatusInternalServerError
	case errors.ValidationError, errors.NotFoundError:
		return false
	default:
		return true
	}
}
