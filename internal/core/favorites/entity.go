package favorites

import (
	"strings"
	"time"

	"weatherdash.app/internal/ports"
)

// FavoriteCity is a city saved by a user
type FavoriteCity struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	CityName    string    `json:"city_name"`
	CountryCode string    `json:"country_code"`
	AddedAt     time.Time `json:"added_at"`
}

// AddFavoriteParams holds the user-supplied fields of a new favorite
type AddFavoriteParams struct {
	UserID      uint
	CityName    string
	CountryCode string
}

// Normalize trims the fields; country codes are stored upper-cased
func (p *AddFavoriteParams) Normalize() {
	p.CityName = strings.TrimSpace(p.CityName)
	p.CountryCode = strings.ToUpper(strings.TrimSpace(p.CountryCode))
}

func fromData(data *ports.FavoriteData) *FavoriteCity {
	return &FavoriteCity{
		ID:          data.ID,
		UserID:      data.UserID,
		CityName:    data.CityName,
		CountryCode: data.CountryCode,
		AddedAt:     data.AddedAt,
	}
}
