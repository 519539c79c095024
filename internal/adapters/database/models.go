package database

import (
	"time"

	"gorm.io/gorm"
)

// UserModel represents the database model for users
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// FavoriteCityModel represents the database model for favorite cities.
// No foreign key is declared so callers may use ad hoc user ids.
type FavoriteCityModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_favorite_user_city_country,priority:1"`
	CityName    string    `gorm:"size:255;not null;uniqueIndex:idx_favorite_user_city_country,priority:2"`
	CountryCode string    `gorm:"size:10;not null;uniqueIndex:idx_favorite_user_city_country,priority:3"`
	AddedAt     time.Time `gorm:"not null;autoCreateTime"`
}

func (FavoriteCityModel) TableName() string {
	return "favorite_cities"
}

// WeatherHistoryModel represents the database model for search history
type WeatherHistoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_history_user_city_time,priority:1"`
	CityName    string    `gorm:"size:255;not null;index:idx_history_user_city_time,priority:2"`
	CountryCode string    `gorm:"size:10"`
	SearchedAt  time.Time `gorm:"not null;index:idx_history_user_city_time,priority:3"`
	WeatherData *string   `gorm:"type:jsonb"`
}

func (WeatherHistoryModel) TableName() string {
	return "weather_history"
}

// WeatherCacheModel represents the shared per-city weather cache row.
// Current and forecast payloads are refreshed independently.
type WeatherCacheModel struct {
	ID                 uint    `gorm:"primaryKey"`
	CityID             int64   `gorm:"uniqueIndex;not null"`
	CityName           string  `gorm:"size:255;not null;index"`
	CountryCode        string  `gorm:"size:10"`
	CurrentWeatherData *string `gorm:"type:jsonb"`
	ForecastData       *string `gorm:"type:jsonb"`
	CurrentUpdatedAt   *time.Time
	ForecastUpdatedAt  *time.Time
	LastUpdated        time.Time `gorm:"not null"`
}

func (WeatherCacheModel) TableName() string {
	return "weather_cache"
}

// Models lists every table the service owns, in creation order
func Models() []interface{} {
	return []interface{}{
		&UserModel{},
		&FavoriteCityModel{},
		&WeatherHistoryModel{},
		&WeatherCacheModel{},
	}
}

// Migrate creates or updates the tables and indexes
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func jsonColumn(data []byte) *string {
	if len(data) == 0 {
		return nil
	}
	s := string(data)
	return &s
}

func jsonValue(column *string) []byte {
	if column == nil {
		return nil
	}
	return []byte(*column)
}
