package external

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type tieredFixture struct {
	kv      *mocks.WeatherCache
	table   *mocks.WeatherCache
	metrics *mocks.MetricsCollector
	clock   *mocks.Clock
	cache   *TieredWeatherCache
}

func newTieredFixture(t *testing.T) *tieredFixture {
	t.Helper()

	f := &tieredFixture{
		kv:      mocks.NewWeatherCache(t),
		table:   mocks.NewWeatherCache(t),
		metrics: mocks.NewMetricsCollector(t),
		clock:   mocks.NewClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
	}

	cache, err := NewTieredWeatherCache(TieredWeatherCacheParams{
		Tiers: []CacheTier{
			{Name: "kv", Cache: f.kv},
			{Name: "table", Cache: f.table},
		},
		Config:  testWeatherConfig,
		Clock:   f.clock,
		Logger:  mocks.NewLogger(t).AllowAll(),
		Metrics: f.metrics,
	})
	require.NoError(t, err)
	f.cache = cache

	return f
}

func TestTieredWeatherCache_FirstTierHit(t *testing.T) {
	f := newTieredFixture(t)
	entry := testCacheEntry(ports.WeatherKindCurrent, f.clock.Now().Add(-time.Minute))

	f.kv.EXPECT().Get(mock.Anything, "london", ports.WeatherKindCurrent).Return(entry, nil).Once()
	f.metrics.EXPECT().RecordCacheHit("kv", ports.WeatherKindCurrent).Once()

	got, err := f.cache.Get(context.Background(), "london", ports.WeatherKindCurrent)

	require.NoError(t, err)
	assert.Same(t, entry, got)
	f.table.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestTieredWeatherCache_TableHitBackfillsKV(t *testing.T) {
	f := newTieredFixture(t)
	entry := testCacheEntry(ports.WeatherKindForecast, f.clock.Now().Add(-5*time.Minute))

	f.kv.EXPECT().Get(mock.Anything, "london", ports.WeatherKindForecast).
		Return(nil, errors.NewNotFoundError("cache miss")).Once()
	f.table.EXPECT().Get(mock.Anything, "london", ports.WeatherKindForecast).Return(entry, nil).Once()
	f.kv.EXPECT().Put(mock.Anything, entry).Return(nil).Once()
	f.metrics.EXPECT().RecordCacheMiss("kv", ports.WeatherKindForecast).Once()
	f.metrics.EXPECT().RecordCacheHit("table", ports.WeatherKindForecast).Once()

	got, err := f.cache.Get(context.Background(), "london", ports.WeatherKindForecast)

	require.NoError(t, err)
	assert.Same(t, entry, got)
}

func TestTieredWeatherCache_StaleEverywhereIsMiss(t *testing.T) {
	f := newTieredFixture(t)
	stale := testCacheEntry(ports.WeatherKindCurrent, f.clock.Now().Add(-10*time.Minute))

	f.kv.EXPECT().Get(mock.Anything, "london", ports.WeatherKindCurrent).
		Return(nil, errors.NewNotFoundError("cache miss")).Once()
	f.table.EXPECT().Get(mock.Anything, "london", ports.WeatherKindCurrent).Return(stale, nil).Once()
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.WeatherKindCurrent).Twice()

	_, err := f.cache.Get(context.Background(), "london", ports.WeatherKindCurrent)

	assert.True(t, errors.IsNotFoundError(err))
}

func TestTieredWeatherCache_OneTierFailingIsStillMiss(t *testing.T) {
	f := newTieredFixture(t)

	f.kv.EXPECT().Get(mock.Anything, "london", ports.WeatherKindCurrent).
		Return(nil, errors.NewCacheError("redis get operation failed", stderrors.New("EOF"))).Once()
	f.table.EXPECT().Get(mock.Anything, "london", ports.WeatherKindCurrent).
		Return(nil, errors.NewNotFoundError("no cached weather")).Once()
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.WeatherKindCurrent).Twice()

	_, err := f.cache.Get(context.Background(), "london", ports.WeatherKindCurrent)

	assert.True(t, errors.IsNotFoundError(err))
}

func TestTieredWeatherCache_AllTiersFailing(t *testing.T) {
	f := newTieredFixture(t)
	failure := errors.NewCacheError("unavailable", nil)

	f.kv.EXPECT().Get(mock.Anything, "london", ports.WeatherKindCurrent).Return(nil, failure).Once()
	f.table.EXPECT().Get(mock.Anything, "london", ports.WeatherKindCurrent).Return(nil, failure).Once()
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.WeatherKindCurrent).Twice()

	_, err := f.cache.Get(context.Background(), "london", ports.WeatherKindCurrent)

	assert.True(t, errors.IsType(err, errors.CacheError))
}

func TestTieredWeatherCache_Put(t *testing.T) {
	entry := testCacheEntry(ports.WeatherKindCurrent, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("WritesEveryTier", func(t *testing.T) {
		f := newTieredFixture(t)
		f.kv.EXPECT().Put(mock.Anything, entry).Return(nil).Once()
		f.table.EXPECT().Put(mock.Anything, entry).Return(nil).Once()

		assert.NoError(t, f.cache.Put(context.Background(), entry))
	})

	t.Run("PartialFailureSucceeds", func(t *testing.T) {
		f := newTieredFixture(t)
		f.kv.EXPECT().Put(mock.Anything, entry).Return(errors.NewCacheError("down", nil)).Once()
		f.table.EXPECT().Put(mock.Anything, entry).Return(nil).Once()

		assert.NoError(t, f.cache.Put(context.Background(), entry))
	})

	t.Run("TotalFailure", func(t *testing.T) {
		f := newTieredFixture(t)
		f.kv.EXPECT().Put(mock.Anything, entry).Return(errors.NewCacheError("down", nil)).Once()
		f.table.EXPECT().Put(mock.Anything, entry).Return(errors.NewDatabaseError("down", nil)).Once()

		err := f.cache.Put(context.Background(), entry)
		assert.True(t, errors.IsType(err, errors.CacheError))
	})
}

func TestNewTieredWeatherCache_Validation(t *testing.T) {
	_, err := NewTieredWeatherCache(TieredWeatherCacheParams{})
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewTieredWeatherCache(TieredWeatherCacheParams{
		Tiers: []CacheTier{{Name: "kv", Cache: mocks.NewWeatherCache(t)}},
	})
	assert.True(t, errors.IsConfigurationError(err))
}
