package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"weatherdash.app/internal/ports"
)

// WeatherCache is a mock type for the ports.WeatherCache type
type WeatherCache struct {
	mock.Mock
}

type WeatherCache_Expecter struct {
	mock *mock.Mock
}

func (_m *WeatherCache) EXPECT() *WeatherCache_Expecter {
	return &WeatherCache_Expecter{mock: &_m.Mock}
}

func (_m *WeatherCache) Get(ctx context.Context, city string, kind ports.WeatherKind) (*ports.WeatherCacheEntry, error) {
	ret := _m.Called(ctx, city, kind)

	var r0 *ports.WeatherCacheEntry
	if v := ret.Get(0); v != nil {
		r0 = v.(*ports.WeatherCacheEntry)
	}
	return r0, ret.Error(1)
}

func (_e *WeatherCache_Expecter) Get(ctx interface{}, city interface{}, kind interface{}) *mock.Call {
	return _e.mock.On("Get", ctx, city, kind)
}

func (_m *WeatherCache) Put(ctx context.Context, entry *ports.WeatherCacheEntry) error {
	ret := _m.Called(ctx, entry)
	return ret.Error(0)
}

func (_e *WeatherCache_Expecter) Put(ctx interface{}, entry interface{}) *mock.Call {
	return _e.mock.On("Put", ctx, entry)
}

// NewWeatherCache creates a new instance of WeatherCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWeatherCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherCache {
	m := &WeatherCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
