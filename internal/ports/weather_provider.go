package ports

import (
	"context"
)

// WeatherKind selects which provider payload a request or cache entry refers to
type WeatherKind string

const (
	WeatherKindCurrent  WeatherKind = "current"
	WeatherKindForecast WeatherKind = "forecast"
)

func (k WeatherKind) IsValid() bool {
	return k == WeatherKindCurrent || k == WeatherKindForecast
}

// Coordinates is a geographic position
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// WeatherCondition describes a single condition reported by the provider
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// MainReadings holds temperature, pressure and humidity readings
type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

type SunInfo struct {
	Type    int    `json:"type,omitempty"`
	ID      int64  `json:"id,omitempty"`
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// WeatherSnapshot is the current-conditions payload in the provider's wire shape.
type WeatherSnapshot struct {
	Coord      Coordinates        `json:"coord"`
	Weather    []WeatherCondition `json:"weather"`
	Base       string             `json:"base,omitempty"`
	Main       MainReadings       `json:"main"`
	Visibility int                `json:"visibility"`
	Wind       Wind               `json:"wind"`
	Clouds     Clouds             `json:"clouds"`
	Dt         int64              `json:"dt"`
	Sys        SunInfo            `json:"sys"`
	Timezone   int                `json:"timezone"`
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Cod        int                `json:"cod"`
}

// ForecastMain is the reduced reading set carried by forecast entries
type ForecastMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like,omitempty"`
	TempMin   float64 `json:"temp_min,omitempty"`
	TempMax   float64 `json:"temp_max,omitempty"`
	Humidity  int     `json:"humidity,omitempty"`
}

type ForecastEntry struct {
	Dt      int64              `json:"dt"`
	Main    ForecastMain       `json:"main"`
	Weather []WeatherCondition `json:"weather"`
	DtTxt   string             `json:"dt_txt,omitempty"`
}

type ForecastCity struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Country  string      `json:"country"`
	Coord    Coordinates `json:"coord"`
	Timezone int         `json:"timezone,omitempty"`
}

// ForecastSnapshot is the 5 day / 3 hour forecast payload, entries ordered by time.
type ForecastSnapshot struct {
	List []ForecastEntry `json:"list"`
	City ForecastCity    `json:"city"`
}

// WeatherProvider defines the contract for the upstream weather API.
// Failures are AppErrors; structured provider errors carry the provider's status.
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string) (*WeatherSnapshot, error)
	GetForecast(ctx context.Context, city string) (*ForecastSnapshot, error)
	GetProviderName() string
}
