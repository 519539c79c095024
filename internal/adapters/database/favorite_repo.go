package database

import (
	"context"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// FavoriteRepositoryAdapter implements the FavoriteRepository port using GORM
type FavoriteRepositoryAdapter struct {
	db *gorm.DB
}

// NewFavoriteRepositoryAdapter creates a new favorite repository adapter
func NewFavoriteRepositoryAdapter(db *gorm.DB) ports.FavoriteRepository {
	return &FavoriteRepositoryAdapter{db: db}
}

// Create inserts a favorite and fills in its ID. The composite unique index
// turns a concurrent duplicate into a ConflictError for all but one caller.
func (r *FavoriteRepositoryAdapter) Create(ctx context.Context, favorite *ports.FavoriteData) error {
	if favorite == nil {
		return errors.NewValidationError("favorite cannot be nil")
	}

	model := r.dataToModel(favorite)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errors.NewConflictError("City is already a favorite", result.Error)
		}
		return errors.NewDatabaseError("failed to create favorite", result.Error)
	}

	favorite.ID = model.ID
	favorite.AddedAt = model.AddedAt
	return nil
}

// ListByUser returns the user's favorites, most recently added first
func (r *FavoriteRepositoryAdapter) ListByUser(ctx context.Context, userID uint) ([]*ports.FavoriteData, error) {
	var models []FavoriteCityModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Order("id DESC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list favorites", result.Error)
	}

	favorites := make([]*ports.FavoriteData, 0, len(models))
	for i := range models {
		favorites = append(favorites, r.modelToData(&models[i]))
	}
	return favorites, nil
}

// DeleteForUser removes the favorite in a single statement scoped to its owner
func (r *FavoriteRepositoryAdapter) DeleteForUser(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&FavoriteCityModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete favorite", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Favorite not found or does not belong to user")
	}
	return nil
}

func (r *FavoriteRepositoryAdapter) dataToModel(data *ports.FavoriteData) *FavoriteCityModel {
	return &FavoriteCityModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CityName:    data.CityName,
		CountryCode: data.CountryCode,
		AddedAt:     data.AddedAt,
	}
}

func (r *FavoriteRepositoryAdapter) modelToData(model *FavoriteCityModel) *ports.FavoriteData {
	return &ports.FavoriteData{
		ID:          model.ID,
		UserID:      model.UserID,
		CityName:    model.CityName,
		CountryCode: model.CountryCode,
		AddedAt:     model.AddedAt,
	}
}
