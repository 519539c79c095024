package app

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/ports"
)

// DemoUsername is the user created by the seed command
const DemoUsername = "demo"

// SeedResult reports what SeedDemoData wrote
type SeedResult struct {
	User   *ports.UserData
	Cities []string
}

// SeedDemoData creates the tables, a demo user and weather_cache rows for London and Tokyo.
// Rows are stamped with the clock's time, so they are served as fresh until their TTL passes.
// When kv is set it is cleared afterwards so older key-value entries cannot shadow the new rows.
func SeedDemoData(ctx context.Context, db *gorm.DB, kv ports.CacheProvider, clock ports.Clock, logger ports.Logger) (*SeedResult, error) {
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	user, err := database.NewUserRepositoryAdapter(db).FindOrCreate(ctx, DemoUsername)
	if err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}
	logger.Info("Demo user ready", ports.F("user_id", user.ID), ports.F("username", user.Username))

	cache := database.NewWeatherCacheRepository(db)
	now := clock.Now()
	result := &SeedResult{User: user}

	for _, sample := range sampleWeather(now.Unix()) {
		entries, err := sample.entries()
		if err != nil {
			return nil, fmt.Errorf("encode %s sample: %w", sample.current.Name, err)
		}
		for _, entry := range entries {
			entry.UpdatedAt = now
			if err := cache.Put(ctx, entry); err != nil {
				return nil, fmt.Errorf("seed %s %s: %w", sample.current.Name, entry.Kind, err)
			}
		}
		result.Cities = append(result.Cities, sample.current.Name)
		logger.Info("Weather cache row seeded",
			ports.F("city", sample.current.Name),
			ports.F("city_id", sample.current.ID))
	}

	if kv != nil {
		if err := kv.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear key-value cache: %w", err)
		}
		logger.Info("Key-value cache cleared")
	}

	return result, nil
}

type weatherSample struct {
	current  ports.WeatherSnapshot
	forecast ports.ForecastSnapshot
}

func (s weatherSample) entries() ([]*ports.WeatherCacheEntry, error) {
	current, err := json.Marshal(s.current)
	if err != nil {
		return nil, err
	}
	forecast, err := json.Marshal(s.forecast)
	if err != nil {
		return nil, err
	}

	base := ports.WeatherCacheEntry{
		CityID:      s.current.ID,
		CityName:    s.current.Name,
		CountryCode: s.current.Sys.Country,
	}
	currentEntry, forecastEntry := base, base
	currentEntry.Kind, currentEntry.Data = ports.WeatherKindCurrent, current
	forecastEntry.Kind, forecastEntry.Data = ports.WeatherKindForecast, forecast

	return []*ports.WeatherCacheEntry{&currentEntry, &forecastEntry}, nil
}

func sampleWeather(dt int64) []weatherSample {
	return []weatherSample{
		{
			current: ports.WeatherSnapshot{
				Coord:      ports.Coordinates{Lon: -0.1257, Lat: 51.5085},
				Weather:    []ports.WeatherCondition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
				Base:       "stations",
				Main:       ports.MainReadings{Temp: 15.5, FeelsLike: 14.2, TempMin: 12.0, TempMax: 18.0, Pressure: 1013, Humidity: 65},
				Visibility: 10000,
				Wind:       ports.Wind{Speed: 3.5, Deg: 180},
				Dt:         dt,
				Sys:        ports.SunInfo{Type: 1, ID: 1414, Country: "GB", Sunrise: 1661834187, Sunset: 1661882248},
				Timezone:   3600,
				ID:         2643743,
				Name:       "London",
				Cod:        200,
			},
			forecast: ports.ForecastSnapshot{
				List: []ports.ForecastEntry{
					{Dt: 1661871600, Main: ports.ForecastMain{Temp: 16.2}, Weather: []ports.WeatherCondition{{Main: "Clear"}}},
					{Dt: 1661882400, Main: ports.ForecastMain{Temp: 18.5}, Weather: []ports.WeatherCondition{{Main: "Clouds"}}},
					{Dt: 1661893200, Main: ports.ForecastMain{Temp: 14.8}, Weather: []ports.WeatherCondition{{Main: "Rain"}}},
				},
				City: ports.ForecastCity{ID: 2643743, Name: "London", Country: "GB"},
			},
		},
		{
			current: ports.WeatherSnapshot{
				Coord:      ports.Coordinates{Lon: 139.6917, Lat: 35.6895},
				Weather:    []ports.WeatherCondition{{ID: 801, Main: "Clouds", Description: "few clouds", Icon: "02d"}},
				Base:       "stations",
				Main:       ports.MainReadings{Temp: 22.3, FeelsLike: 21.8, TempMin: 20.0, TempMax: 25.0, Pressure: 1015, Humidity: 70},
				Visibility: 10000,
				Wind:       ports.Wind{Speed: 2.1, Deg: 90},
				Clouds:     ports.Clouds{All: 75},
				Dt:         dt,
				Sys:        ports.SunInfo{Type: 1, ID: 7619, Country: "JP", Sunrise: 1661801994, Sunset: 1661849400},
				Timezone:   32400,
				ID:         1850147,
				Name:       "Tokyo",
				Cod:        200,
			},
			forecast: ports.ForecastSnapshot{
				List: []ports.ForecastEntry{
					{Dt: 1753606800, Main: ports.ForecastMain{Temp: 30.8}, Weather: []ports.WeatherCondition{{Main: "Clouds"}}},
					{Dt: 1753617600, Main: ports.ForecastMain{Temp: 29.79}, Weather: []ports.WeatherCondition{{Main: "Clouds"}}},
					{Dt: 1753628400, Main: ports.ForecastMain{Temp: 28.19}, Weather: []ports.WeatherCondition{{Main: "Clear"}}},
				},
				City: ports.ForecastCity{ID: 1850147, Name: "Tokyo", Country: "JP"},
			},
		},
	}
}
