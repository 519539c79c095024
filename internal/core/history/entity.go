package history

import (
	"encoding/json"
	"time"

	"weatherdash.app/internal/ports"
)

// SearchHistoryItem is one recorded weather lookup
type SearchHistoryItem struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	CityName    string          `json:"city_name"`
	CountryCode string          `json:"country_code"`
	SearchedAt  time.Time       `json:"searched_at"`
	WeatherData json.RawMessage `json:"weather_data,omitempty"`
}

// IsDuplicate reports whether a new search at now repeats latest inside window
func IsDuplicate(latest *ports.HistoryData, now time.Time, window time.Duration) bool {
	if latest == nil {
		return false
	}
	return now.Sub(latest.SearchedAt) < window
}

func fromData(data *ports.HistoryData) *SearchHistoryItem {
	return &SearchHistoryItem{
		ID:          data.ID,
		UserID:      data.UserID,
		CityName:    data.CityName,
		CountryCode: data.CountryCode,
		SearchedAt:  data.SearchedAt,
		WeatherData: data.WeatherData,
	}
}
