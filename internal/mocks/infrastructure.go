package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"weatherdash.app/internal/ports"
)

// ConfigProvider is a mock type for the ports.ConfigProvider type
type ConfigProvider struct {
	mock.Mock
}

type ConfigProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *ConfigProvider) EXPECT() *ConfigProvider_Expecter {
	return &ConfigProvider_Expecter{mock: &_m.Mock}
}

func (_m *ConfigProvider) GetWeatherConfig() ports.WeatherConfig {
	return _m.Called().Get(0).(ports.WeatherConfig)
}

func (_e *ConfigProvider_Expecter) GetWeatherConfig() *mock.Call {
	return _e.mock.On("GetWeatherConfig")
}

func (_m *ConfigProvider) GetHistoryConfig() ports.HistoryConfig {
	return _m.Called().Get(0).(ports.HistoryConfig)
}

func (_e *ConfigProvider_Expecter) GetHistoryConfig() *mock.Call {
	return _e.mock.On("GetHistoryConfig")
}

func (_m *ConfigProvider) GetServerConfig() ports.ServerConfig {
	return _m.Called().Get(0).(ports.ServerConfig)
}

func (_e *ConfigProvider_Expecter) GetServerConfig() *mock.Call {
	return _e.mock.On("GetServerConfig")
}

func (_m *ConfigProvider) GetProviderConfig() ports.ProviderConfig {
	return _m.Called().Get(0).(ports.ProviderConfig)
}

func (_e *ConfigProvider_Expecter) GetProviderConfig() *mock.Call {
	return _e.mock.On("GetProviderConfig")
}

// NewConfigProvider creates a new instance of ConfigProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewConfigProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConfigProvider {
	m := &ConfigProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Logger is a mock type for the ports.Logger type.
// Fields are passed as a single slice argument so one expectation matches any field count.
type Logger struct {
	mock.Mock
}

type Logger_Expecter struct {
	mock *mock.Mock
}

func (_m *Logger) EXPECT() *Logger_Expecter {
	return &Logger_Expecter{mock: &_m.Mock}
}

func (_m *Logger) Debug(msg string, fields ...ports.Field) {
	_m.Called(msg, fields)
}

func (_e *Logger_Expecter) Debug(msg interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Debug", msg, fields)
}

func (_m *Logger) Info(msg string, fields ...ports.Field) {
	_m.Called(msg, fields)
}

func (_e *Logger_Expecter) Info(msg interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Info", msg, fields)
}

func (_m *Logger) Warn(msg string, fields ...ports.Field) {
	_m.Called(msg, fields)
}

func (_e *Logger_Expecter) Warn(msg interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Warn", msg, fields)
}

func (_m *Logger) Error(msg string, fields ...ports.Field) {
	_m.Called(msg, fields)
}

func (_e *Logger_Expecter) Error(msg interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Error", msg, fields)
}

// AllowAll accepts any log call at any level.
func (_m *Logger) AllowAll() *Logger {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		_m.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return _m
}

// NewLogger creates a new instance of Logger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	m := &Logger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MetricsCollector is a mock type for the ports.MetricsCollector type
type MetricsCollector struct {
	mock.Mock
}

type MetricsCollector_Expecter struct {
	mock *mock.Mock
}

func (_m *MetricsCollector) EXPECT() *MetricsCollector_Expecter {
	return &MetricsCollector_Expecter{mock: &_m.Mock}
}

func (_m *MetricsCollector) RecordCacheHit(tier string, kind ports.WeatherKind) {
	_m.Called(tier, kind)
}

func (_e *MetricsCollector_Expecter) RecordCacheHit(tier interface{}, kind interface{}) *mock.Call {
	return _e.mock.On("RecordCacheHit", tier, kind)
}

func (_m *MetricsCollector) RecordCacheMiss(tier string, kind ports.WeatherKind) {
	_m.Called(tier, kind)
}

func (_e *MetricsCollector_Expecter) RecordCacheMiss(tier interface{}, kind interface{}) *mock.Call {
	return _e.mock.On("RecordCacheMiss", tier, kind)
}

func (_m *MetricsCollector) RecordProviderCall(kind ports.WeatherKind, outcome string, duration time.Duration) {
	_m.Called(kind, outcome, duration)
}

func (_e *MetricsCollector_Expecter) RecordProviderCall(kind interface{}, outcome interface{}, duration interface{}) *mock.Call {
	return _e.mock.On("RecordProviderCall", kind, outcome, duration)
}

func (_m *MetricsCollector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	_m.Called(method, route, status, duration)
}

func (_e *MetricsCollector_Expecter) RecordHTTPRequest(method interface{}, route interface{}, status interface{}, duration interface{}) *mock.Call {
	return _e.mock.On("RecordHTTPRequest", method, route, status, duration)
}

// AllowAll accepts any metrics call.
func (_m *MetricsCollector) AllowAll() *MetricsCollector {
	_m.On("RecordCacheHit", mock.Anything, mock.Anything).Maybe()
	_m.On("RecordCacheMiss", mock.Anything, mock.Anything).Maybe()
	_m.On("RecordProviderCall", mock.Anything, mock.Anything, mock.Anything).Maybe()
	_m.On("RecordHTTPRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return _m
}

// NewMetricsCollector creates a new instance of MetricsCollector. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMetricsCollector(t interface {
	mock.TestingT
	Cleanup(func())
}) *MetricsCollector {
	m := &MetricsCollector{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// HealthChecker is a mock type for the ports.HealthChecker type
type HealthChecker struct {
	mock.Mock
}

type HealthChecker_Expecter struct {
	mock *mock.Mock
}

func (_m *HealthChecker) EXPECT() *HealthChecker_Expecter {
	return &HealthChecker_Expecter{mock: &_m.Mock}
}

func (_m *HealthChecker) Check(ctx context.Context) ports.HealthStatus {
	return _m.Called(ctx).Get(0).(ports.HealthStatus)
}

func (_e *HealthChecker_Expecter) Check(ctx interface{}) *mock.Call {
	return _e.mock.On("Check", ctx)
}

// NewHealthChecker creates a new instance of HealthChecker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *HealthChecker {
	m := &HealthChecker{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Clock is a settable ports.Clock for tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
