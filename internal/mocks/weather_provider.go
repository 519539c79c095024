// Package mocks holds testify mocks for the ports interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"weatherdash.app/internal/ports"
)

// WeatherProvider is a mock type for the ports.WeatherProvider type
type WeatherProvider struct {
	mock.Mock
}

type WeatherProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *WeatherProvider) EXPECT() *WeatherProvider_Expecter {
	return &WeatherProvider_Expecter{mock: &_m.Mock}
}

func (_m *WeatherProvider) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherSnapshot, error) {
	ret := _m.Called(ctx, city)

	var r0 *ports.WeatherSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.(*ports.WeatherSnapshot)
	}
	return r0, ret.Error(1)
}

func (_e *WeatherProvider_Expecter) GetCurrentWeather(ctx interface{}, city interface{}) *mock.Call {
	return _e.mock.On("GetCurrentWeather", ctx, city)
}

func (_m *WeatherProvider) GetForecast(ctx context.Context, city string) (*ports.ForecastSnapshot, error) {
	ret := _m.Called(ctx, city)

	var r0 *ports.ForecastSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.(*ports.ForecastSnapshot)
	}
	return r0, ret.Error(1)
}

func (_e *WeatherProvider_Expecter) GetForecast(ctx interface{}, city interface{}) *mock.Call {
	return _e.mock.On("GetForecast", ctx, city)
}

func (_m *WeatherProvider) GetProviderName() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_e *WeatherProvider_Expecter) GetProviderName() *mock.Call {
	return _e.mock.On("GetProviderName")
}

// NewWeatherProvider creates a new instance of WeatherProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWeatherProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherProvider {
	m := &WeatherProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
