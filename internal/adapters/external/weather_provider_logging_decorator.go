package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherSnapshot, error) {
	start := d.started(ports.WeatherKindCurrent, city)

	snapshot, err := d.provider.GetCurrentWeather(ctx, city)
	if err != nil {
		d.failed(ports.WeatherKindCurrent, city, start, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("kind", ports.WeatherKindCurrent),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", time.Since(start).Milliseconds()),
		ports.F("temperature", snapshot.Main.Temp),
		ports.F("humidity", snapshot.Main.Humidity))
	return snapshot, nil
}

func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, city string) (*ports.ForecastSnapshot, error) {
	start := d.started(ports.WeatherKindForecast, city)

	snapshot, err := d.provider.GetForecast(ctx, city)
	if err != nil {
		d.failed(ports.WeatherKindForecast, city, start, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("kind", ports.WeatherKindForecast),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", time.Since(start).Milliseconds()),
		ports.F("entries", len(snapshot.List)))
	return snapshot, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func (d *WeatherProviderLoggingDecorator) started(kind ports.WeatherKind, city string) time.Time {
	d.logger.Info("Weather API request started",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("kind", kind),
		ports.F("city", city),
		ports.F("event", "request"))
	return time.Now()
}

func (d *WeatherProviderLoggingDecorator) failed(kind ports.WeatherKind, city string, start time.Time, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("kind", kind),
		ports.F("city", city),
		ports.F("event", "error"),
		ports.F("duration_ms", time.Since(start).Milliseconds()),
		ports.F("error", err.Error()))
}
