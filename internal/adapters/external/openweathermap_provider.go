package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	maxErrorBodyBytes            = 64 << 10
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// openWeatherMapError is the error body the API returns with non-2xx statuses.
// cod is a number on some endpoints and a string on others.
type openWeatherMapError struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves current conditions from the /weather endpoint
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherSnapshot, error) {
	var snapshot ports.WeatherSnapshot
	if err := p.get(ctx, "weather", city, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetForecast retrieves the 5 day / 3 hour forecast from the /forecast endpoint
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, city string) (*ports.ForecastSnapshot, error) {
	var snapshot ports.ForecastSnapshot
	if err := p.get(ctx, "forecast", city, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) get(ctx context.Context, endpoint, city string, target interface{}) error {
	if strings.TrimSpace(city) == "" {
		return errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewInternalError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		upstreamErr := errors.NewUpstreamError(http.StatusBadGateway, "weather provider unavailable")
		upstreamErr.Cause = err
		return upstreamErr
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return p.statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		upstreamErr := errors.NewUpstreamError(http.StatusBadGateway, "failed to decode OpenWeatherMap response")
		upstreamErr.Cause = err
		return upstreamErr
	}
	return nil
}

// statusError turns a non-200 response into an upstream error carrying the provider's status and message
func (p *OpenWeatherMapProviderAdapter) statusError(resp *http.Response) error {
	message := fmt.Sprintf("API error with status %d", resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err == nil {
		var apiErr openWeatherMapError
		if json.Unmarshal(body, &apiErr) == nil && strings.TrimSpace(apiErr.Message) != "" {
			message = apiErr.Message
		}
	}

	return errors.NewUpstreamError(resp.StatusCode, message)
}
