package weather

import (
	"context"
	"encoding/json"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	cache           ports.WeatherCache
	recorder        ports.SearchRecorder
	config          ports.ConfigProvider
	clock           ports.Clock
	logger          ports.Logger
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Cache           ports.WeatherCache
	Recorder        ports.SearchRecorder
	Config          ports.ConfigProvider
	Clock           ports.Clock
	Logger          ports.Logger
}

// fetchFunc calls the provider for one payload kind
type fetchFunc func(ctx context.Context, city string) (json.RawMessage, Location, error)

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Recorder == nil {
		return nil, errors.NewValidationError("search recorder is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Clock == nil {
		return nil, errors.NewValidationError("clock is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		cache:           deps.Cache,
		recorder:        deps.Recorder,
		config:          deps.Config,
		clock:           deps.Clock,
		logger:          deps.Logger,
	}, nil
}

// GetCurrentWeather returns current conditions for the city, served from cache while fresh.
func (uc *UseCase) GetCurrentWeather(ctx context.Context, request WeatherRequest) (*ports.WeatherSnapshot, error) {
	raw, err := uc.lookup(ctx, request, ports.WeatherKindCurrent, uc.fetchCurrent)
	if err != nil {
		return nil, err
	}

	var snapshot ports.WeatherSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.NewInternalError("decode current weather payload", err)
	}
	return &snapshot, nil
}

// GetForecast returns the 5 day / 3 hour forecast for the city, served from cache while fresh.
func (uc *UseCase) GetForecast(ctx context.Context, request WeatherRequest) (*ports.ForecastSnapshot, error) {
	raw, err := uc.lookup(ctx, request, ports.WeatherKindForecast, uc.fetchForecast)
	if err != nil {
		return nil, err
	}

	var snapshot ports.ForecastSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.NewInternalError("decode forecast payload", err)
	}
	return &snapshot, nil
}

func (uc *UseCase) lookup(ctx context.Context, request WeatherRequest, kind ports.WeatherKind, fetch fetchFunc) (json.RawMessage, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}

	city := request.NormalizedCity()
	uc.logger.Debug("Getting weather for city", ports.F("city", city), ports.F("kind", kind))

	raw, location, err := uc.getWithCache(ctx, city, kind, fetch)
	if err != nil {
		uc.logger.Debug("Weather lookup failed",
			ports.F("city", city),
			ports.F("kind", kind),
			ports.F("error", err))
		return nil, fmt.Errorf("get %s weather for city %s: %w", kind, city, err)
	}

	if err := uc.recorder.RecordSearch(ctx, request.UserID, location.Name, location.Country, raw); err != nil {
		return nil, fmt.Errorf("record search for city %s: %w", city, err)
	}

	return raw, nil
}

func (uc *UseCase) getWithCache(ctx context.Context, city string, kind ports.WeatherKind, fetch fetchFunc) (json.RawMessage, Location, error) {
	ttl := uc.config.GetWeatherConfig().TTL(kind)

	cached, err := uc.cache.Get(ctx, city, kind)
	switch {
	case err == nil && cached != nil && IsFresh(cached.UpdatedAt, uc.clock.Now(), ttl):
		uc.logger.Debug("Weather found in cache", ports.F("city", city), ports.F("kind", kind))
		return cached.Data, Location{CityID: cached.CityID, Name: cached.CityName, Country: cached.CountryCode}, nil
	case err != nil && !errors.IsNotFoundError(err):
		uc.logger.Warn("Weather cache read failed, treating as miss",
			ports.F("city", city),
			ports.F("kind", kind),
			ports.F("error", err))
	}

	raw, location, err := fetch(ctx, city)
	if err != nil {
		return nil, Location{}, err
	}

	entry := &ports.WeatherCacheEntry{
		City:        city,
		Kind:        kind,
		CityID:      location.CityID,
		CityName:    location.Name,
		CountryCode: location.Country,
		Data:        raw,
		UpdatedAt:   uc.clock.Now(),
	}
	if cacheErr := uc.cache.Put(ctx, entry); cacheErr != nil {
		uc.logger.Warn("Failed to cache weather data",
			ports.F("city", city),
			ports.F("kind", kind),
			ports.F("error", cacheErr))
	}

	return raw, location, nil
}

func (uc *UseCase) fetchCurrent(ctx context.Context, city string) (json.RawMessage, Location, error) {
	snapshot, err := uc.weatherProvider.GetCurrentWeather(ctx, city)
	if err != nil {
		return nil, Location{}, providerError(err)
	}

	location, err := CurrentLocation(snapshot)
	if err != nil {
		return nil, Location{}, errors.NewUpstreamError(502, "invalid weather data from provider: "+err.Error())
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, Location{}, errors.NewInternalError("encode current weather payload", err)
	}
	return raw, location, nil
}

func (uc *UseCase) fetchForecast(ctx context.Context, city string) (json.RawMessage, Location, error) {
	snapshot, err := uc.weatherProvider.GetForecast(ctx, city)
	if err != nil {
		return nil, Location{}, providerError(err)
	}

	location, err := ForecastLocation(snapshot)
	if err != nil {
		return nil, Location{}, errors.NewUpstreamError(502, "invalid forecast data from provider: "+err.Error())
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, Location{}, errors.NewInternalError("encode forecast payload", err)
	}
	return raw, location, nil
}

// providerError keeps structured provider failures intact so their status reaches the client.
func providerError(err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.NewUpstreamUnavailableError("weather provider unavailable", err)
}
