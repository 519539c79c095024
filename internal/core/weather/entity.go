package weather

import (
	"fmt"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/validation"
)

// WeatherRequest represents a lookup of one payload kind for a city on behalf of a user
type WeatherRequest struct {
	UserID uint
	City   string
}

// Location identifies the city a payload describes, as reported by the provider
type Location struct {
	CityID  int64
	Name    string
	Country string
}

// IsValid validates weather request
func (wr *WeatherRequest) IsValid() error {
	if wr.UserID == 0 {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(wr.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// NormalizedCity returns the case-insensitive cache key form of the requested city
func (wr *WeatherRequest) NormalizedCity() string {
	return validation.NormalizeCity(wr.City)
}

// IsFresh reports whether a payload updated at updatedAt is still within ttl at now
func IsFresh(updatedAt, now time.Time, ttl time.Duration) bool {
	if updatedAt.IsZero() {
		return false
	}
	return now.Sub(updatedAt) < ttl
}

// CurrentLocation extracts the city identity from a current weather payload
func CurrentLocation(s *ports.WeatherSnapshot) (Location, error) {
	if s == nil || strings.TrimSpace(s.Name) == "" {
		return Location{}, fmt.Errorf("city name is missing")
	}
	return Location{CityID: s.ID, Name: s.Name, Country: s.Sys.Country}, nil
}

// ForecastLocation extracts the city identity from a forecast payload
func ForecastLocation(s *ports.ForecastSnapshot) (Location, error) {
	if s == nil || strings.TrimSpace(s.City.Name) == "" {
		return Location{}, fmt.Errorf("city name is missing")
	}
	return Location{CityID: s.City.ID, Name: s.City.Name, Country: s.City.Country}, nil
}
