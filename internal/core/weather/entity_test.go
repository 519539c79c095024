package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
)

func TestWeatherRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request WeatherRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "ValidRequest",
			request: WeatherRequest{UserID: 1, City: "Tokyo"},
			wantErr: false,
		},
		{
			name:    "MissingUser",
			request: WeatherRequest{City: "Tokyo"},
			wantErr: true,
			errMsg:  "user id is required",
		},
		{
			name:    "EmptyCity",
			request: WeatherRequest{UserID: 1, City: ""},
			wantErr: true,
			errMsg:  "city cannot be empty",
		},
		{
			name:    "WhitespaceOnlyCity",
			request: WeatherRequest{UserID: 1, City: "   "},
			wantErr: true,
			errMsg:  "city cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeatherRequest_NormalizedCity(t *testing.T) {
	req := WeatherRequest{UserID: 1, City: "  New York "}
	assert.Equal(t, "new york", req.NormalizedCity())
}

func TestIsFresh(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	tests := []struct {
		name      string
		updatedAt time.Time
		want      bool
	}{
		{name: "JustWritten", updatedAt: now, want: true},
		{name: "NineMinutesOld", updatedAt: now.Add(-9 * time.Minute), want: true},
		{name: "ExactlyAtTTL", updatedAt: now.Add(-ttl), want: false},
		{name: "Expired", updatedAt: now.Add(-11 * time.Minute), want: false},
		{name: "NeverWritten", updatedAt: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFresh(tt.updatedAt, now, ttl))
		})
	}
}

func TestCurrentLocation(t *testing.T) {
	loc, err := CurrentLocation(&ports.WeatherSnapshot{ID: 1850147, Name: "Tokyo", Sys: ports.SunInfo{Country: "JP"}})
	require.NoError(t, err)
	assert.Equal(t, Location{CityID: 1850147, Name: "Tokyo", Country: "JP"}, loc)

	_, err = CurrentLocation(&ports.WeatherSnapshot{})
	assert.Error(t, err)

	_, err = CurrentLocation(nil)
	assert.Error(t, err)
}

func TestForecastLocation(t *testing.T) {
	loc, err := ForecastLocation(&ports.ForecastSnapshot{City: ports.ForecastCity{ID: 2643743, Name: "London", Country: "GB"}})
	require.NoError(t, err)
	assert.Equal(t, "London", loc.Name)
	assert.Equal(t, "GB", loc.Country)

	_, err = ForecastLocation(&ports.ForecastSnapshot{})
	assert.Error(t, err)
}
