package history

import (
	"context"
	"encoding/json"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

type UseCase struct {
	repo   ports.HistoryRepository
	config ports.ConfigProvider
	clock  ports.Clock
	logger ports.Logger
}

type UseCaseDependencies struct {
	Repository ports.HistoryRepository
	Config     ports.ConfigProvider
	Clock      ports.Clock
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("history repository is required")
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
		repo:   deps.Repository,
		config: deps.Config,
		clock:  deps.Clock,
		logger: deps.Logger,
	}, nil
}

// RecordSearch appends a history row unless the user searched the same city within the dedup window.
func (uc *UseCase) RecordSearch(ctx context.Context, userID uint, cityName, countryCode string, payload json.RawMessage) error {
	if userID == 0 {
		return errors.NewValidationError("user id is required")
	}
	cityName, ok := validation.TrimAndValidate(cityName)
	if !ok {
		return errors.NewValidationError("city name is required")
	}

	now := uc.clock.Now()
	window := uc.config.GetHistoryConfig().DedupWindow

	latest, err := uc.repo.LatestForCity(ctx, userID, cityName)
	if err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("find latest search for city %s: %w", cityName, err)
	}
	if err == nil && IsDuplicate(latest, now, window) {
		uc.logger.Debug("Skipping duplicate search",
			ports.F("user_id", userID),
			ports.F("city", cityName),
			ports.F("last_searched_at", latest.SearchedAt))
		return nil
	}

	item := &ports.HistoryData{
		UserID:      userID,
		CityName:    cityName,
		CountryCode: countryCode,
		SearchedAt:  now,
		WeatherData: payload,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return fmt.Errorf("save search for city %s: %w", cityName, err)
	}

	uc.logger.Debug("Search recorded", ports.F("user_id", userID), ports.F("city", cityName))
	return nil
}

// ListHistory returns the user's most recent searches, newest first.
func (uc *UseCase) ListHistory(ctx context.Context, userID uint) ([]*SearchHistoryItem, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	limit := uc.config.GetHistoryConfig().ListLimit
	rows, err := uc.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history for user %d: %w", userID, err)
	}

	items := make([]*SearchHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromData(row))
	}
	return items, nil
}
