package ports

import (
	"context"
	"encoding/json"
	"time"
)

// UserData represents a user for persistence
type UserData struct {
	ID        uint
	Username  string
	CreatedAt time.Time
}

// FavoriteData represents a favorite city for persistence
type FavoriteData struct {
	ID          uint
	UserID      uint
	CityName    string
	CountryCode string
	AddedAt     time.Time
}

// HistoryData represents one search history row
type HistoryData struct {
	ID          uint
	UserID      uint
	CityName    string
	CountryCode string
	SearchedAt  time.Time
	WeatherData json.RawMessage
}

type UserRepository interface {
	FindOrCreate(ctx context.Context, username string) (*UserData, error)
}

// FavoriteRepository defines the contract for favorite city persistence.
// Create returns a ConflictError when (user, city, country) already exists.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *FavoriteData) error
	ListByUser(ctx context.Context, userID uint) ([]*FavoriteData, error)
	DeleteForUser(ctx context.Context, id, userID uint) error
}

// HistoryRepository defines the contract for search history persistence.
// LatestForCity returns a NotFoundError when the user never searched the city.
type HistoryRepository interface {
	LatestForCity(ctx context.Context, userID uint, cityName string) (*HistoryData, error)
	Create(ctx context.Context, item *HistoryData) error
	ListRecent(ctx context.Context, userID uint, limit int) ([]*HistoryData, error)
}

// SearchRecorder records a successful weather lookup in the user's history.
// Implementations collapse repeated lookups of the same city inside a short window.
type SearchRecorder interface {
	RecordSearch(ctx context.Context, userID uint, cityName, countryCode string, payload json.RawMessage) error
}
