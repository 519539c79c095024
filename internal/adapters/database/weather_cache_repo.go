package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// WeatherCacheRepository is the relational tier of the weather cache.
// Rows are found by case-insensitive city name and upserted by provider city id.
type WeatherCacheRepository struct {
	db *gorm.DB
}

func NewWeatherCacheRepository(db *gorm.DB) *WeatherCacheRepository {
	return &WeatherCacheRepository{db: db}
}

func (r *WeatherCacheRepository) Get(ctx context.Context, city string, kind ports.WeatherKind) (*ports.WeatherCacheEntry, error) {
	if !kind.IsValid() {
		return nil, errors.NewValidationError("invalid weather kind")
	}

	var model WeatherCacheModel
	result := r.db.WithContext(ctx).
		Where("LOWER(city_name) = LOWER(?)", city).
		Order("last_updated DESC").
		First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("failed to read weather cache row", result.Error)
	}

	data, updatedAt := model.CurrentWeatherData, model.CurrentUpdatedAt
	if kind == ports.WeatherKindForecast {
		data, updatedAt = model.ForecastData, model.ForecastUpdatedAt
	}
	if data == nil || updatedAt == nil {
		return nil, errors.NewNotFoundError("cache miss")
	}

	return &ports.WeatherCacheEntry{
		City:        city,
		Kind:        kind,
		CityID:      model.CityID,
		CityName:    model.CityName,
		CountryCode: model.CountryCode,
		Data:        jsonValue(data),
		UpdatedAt:   *updatedAt,
	}, nil
}

// Put upserts the entry's kind for the city; the other kind's columns are left untouched.
func (r *WeatherCacheRepository) Put(ctx context.Context, entry *ports.WeatherCacheEntry) error {
	if entry == nil || !entry.Kind.IsValid() {
		return errors.NewValidationError("invalid weather cache entry")
	}
	if entry.CityID == 0 || entry.CityName == "" {
		return errors.NewValidationError("city id and name are required for the weather cache table")
	}

	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	model := &WeatherCacheModel{
		CityID:      entry.CityID,
		CityName:    entry.CityName,
		CountryCode: entry.CountryCode,
		LastUpdated: updatedAt,
	}
	columns := []string{"city_name", "country_code", "last_updated"}
	switch entry.Kind {
	case ports.WeatherKindCurrent:
		model.CurrentWeatherData = jsonColumn(entry.Data)
		model.CurrentUpdatedAt = &updatedAt
		columns = append(columns, "current_weather_data", "current_updated_at")
	case ports.WeatherKindForecast:
		model.ForecastData = jsonColumn(entry.Data)
		model.ForecastUpdatedAt = &updatedAt
		columns = append(columns, "forecast_data", "forecast_updated_at")
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(model)
	if result.Error != nil {
		return errors.NewCacheError("failed to upsert weather cache row", result.Error)
	}
	return nil
}

var _ ports.WeatherCache = (*WeatherCacheRepository)(nil)
