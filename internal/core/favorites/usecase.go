package favorites

import (
	"context"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

type UseCase struct {
	repo   ports.FavoriteRepository
	clock  ports.Clock
	logger ports.Logger
}

type UseCaseDependencies struct {
	Repository ports.FavoriteRepository
	Clock      ports.Clock
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("favorite repository is required")
	}
	if deps.Clock == nil {
		return nil, errors.NewValidationError("clock is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		repo:   deps.Repository,
		clock:  deps.Clock,
		logger: deps.Logger,
	}, nil
}

func (uc *UseCase) validateAddParams(params AddFavoriteParams) error {
	if params.UserID == 0 {
		return errors.NewValidationError("user id is required")
	}
	if !validation.IsNotEmpty(params.CityName) || !validation.IsNotEmpty(params.CountryCode) {
		return errors.NewValidationError("city_name and country_code are required")
	}
	return nil
}

// AddFavorite saves a city for the user. Saving the same (city, country) twice is a conflict.
func (uc *UseCase) AddFavorite(ctx context.Context, params AddFavoriteParams) (*FavoriteCity, error) {
	if err := uc.validateAddParams(params); err != nil {
		return nil, err
	}
	params.Normalize()

	data := &ports.FavoriteData{
		UserID:      params.UserID,
		CityName:    params.CityName,
		CountryCode: params.CountryCode,
		AddedAt:     uc.clock.Now(),
	}
	if err := uc.repo.Create(ctx, data); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("add favorite %s,%s: %w", params.CityName, params.CountryCode, err)
	}

	uc.logger.Info("Favorite added",
		ports.F("user_id", params.UserID),
		ports.F("favorite_id", data.ID),
		ports.F("city", params.CityName))
	return fromData(data), nil
}

// ListFavorites returns the user's favorites, most recently added first.
func (uc *UseCase) ListFavorites(ctx context.Context, userID uint) ([]*FavoriteCity, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	rows, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites for user %d: %w", userID, err)
	}

	favorites := make([]*FavoriteCity, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, fromData(row))
	}
	return favorites, nil
}

// DeleteFavorite removes a favorite owned by the user. A missing or foreign id is NotFound.
func (uc *UseCase) DeleteFavorite(ctx context.Context, userID, favoriteID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user id is required")
	}
	if favoriteID == 0 {
		return errors.NewValidationError("invalid favorite id")
	}

	if err := uc.repo.DeleteForUser(ctx, favoriteID, userID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("delete favorite %d: %w", favoriteID, err)
	}

	uc.logger.Info("Favorite removed", ports.F("user_id", userID), ports.F("favorite_id", favoriteID))
	return nil
}
