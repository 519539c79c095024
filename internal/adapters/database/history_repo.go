package database

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// HistoryRepositoryAdapter implements the HistoryRepository port using GORM
type HistoryRepositoryAdapter struct {
	db *gorm.DB
}

// NewHistoryRepositoryAdapter creates a new history repository adapter
func NewHistoryRepositoryAdapter(db *gorm.DB) ports.HistoryRepository {
	return &HistoryRepositoryAdapter{db: db}
}

// LatestForCity returns the user's most recent search of the city.
// Served by the (user_id, city_name, searched_at) index.
func (r *HistoryRepositoryAdapter) LatestForCity(ctx context.Context, userID uint, cityName string) (*ports.HistoryData, error) {
	var model WeatherHistoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND city_name = ?", userID, cityName).
		Order("searched_at DESC").
		First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("no previous search for city")
		}
		return nil, errors.NewDatabaseError("failed to find latest search", result.Error)
	}

	return r.modelToData(&model), nil
}

func (r *HistoryRepositoryAdapter) Create(ctx context.Context, item *ports.HistoryData) error {
	if item == nil {
		return errors.NewValidationError("history item cannot be nil")
	}

	model := &WeatherHistoryModel{
		UserID:      item.UserID,
		CityName:    item.CityName,
		CountryCode: item.CountryCode,
		SearchedAt:  item.SearchedAt,
		WeatherData: jsonColumn(item.WeatherData),
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("failed to save search history", result.Error)
	}

	item.ID = model.ID
	return nil
}

// ListRecent returns at most limit rows for the user, newest first
func (r *HistoryRepositoryAdapter) ListRecent(ctx context.Context, userID uint, limit int) ([]*ports.HistoryData, error) {
	var models []WeatherHistoryModel
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&models); result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list search history", result.Error)
	}

	items := make([]*ports.HistoryData, 0, len(models))
	for i := range models {
		items = append(items, r.modelToData(&models[i]))
	}
	return items, nil
}

func (r *HistoryRepositoryAdapter) modelToData(model *WeatherHistoryModel) *ports.HistoryData {
	return &ports.HistoryData{
		ID:          model.ID,
		UserID:      model.UserID,
		CityName:    model.CityName,
		CountryCode: model.CountryCode,
		SearchedAt:  model.SearchedAt,
		WeatherData: jsonValue(model.WeatherData),
	}
}
