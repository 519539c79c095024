package external

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	return mockRedis, &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}
}

func newTestRedisProvider(t *testing.T) (*miniredis.Miniredis, *RedisCacheProviderAdapter) {
	t.Helper()

	mockRedis, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })

	return mockRedis, provider
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		provider, err := NewRedisCacheProviderAdapter(nil)

		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("UnreachableServer", func(t *testing.T) {
		mockRedis, cfg := setupMockRedis(t)
		mockRedis.Close()

		provider, err := NewRedisCacheProviderAdapter(cfg)

		assert.Nil(t, provider)
		assert.True(t, errors.IsType(err, errors.CacheError))
	})

	t.Run("ValidConfig", func(t *testing.T) {
		_, provider := newTestRedisProvider(t)
		assert.NotNil(t, provider)
	})
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, provider := newTestRedisProvider(t)
	ctx := context.Background()
	key := "weather:london:current"

	_, err := provider.Get(ctx, key)
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, provider.Set(ctx, key, []byte(`{"city_id":2643743}`), 10*time.Minute))

	value, err := provider.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"city_id":2643743}`, string(value))

	assert.True(t, mockRedis.Exists(key))

	mockRedis.FastForward(11 * time.Minute)

	_, err = provider.Get(ctx, key)
	assert.True(t, errors.IsNotFoundError(err), "entry must expire with its TTL")

	require.NoError(t, provider.Set(ctx, key, []byte("x"), time.Minute))
	require.NoError(t, provider.Delete(ctx, key))
	assert.False(t, mockRedis.Exists(key))

	require.NoError(t, provider.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, provider.Clear(ctx))
	assert.False(t, mockRedis.Exists("a"))
}

func TestRedisCacheProviderAdapter_KeyPrefix(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	cfg.KeyPrefix = "weatherdash:"
	provider, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "weather:oslo:current", []byte("v"), time.Minute))
	assert.True(t, mockRedis.Exists("weatherdash:weather:oslo:current"))

	value, err := provider.Get(ctx, "weather:oslo:current")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	// keys owned by other applications survive Clear
	require.NoError(t, mockRedis.Set("sessions:42", "alive"))
	for i := 0; i < 250; i++ {
		require.NoError(t, provider.Set(ctx, fmt.Sprintf("weather:city%d:current", i), []byte("v"), time.Minute))
	}

	require.NoError(t, provider.Clear(ctx))

	assert.False(t, mockRedis.Exists("weatherdash:weather:oslo:current"))
	assert.False(t, mockRedis.Exists("weatherdash:weather:city249:current"))
	assert.True(t, mockRedis.Exists("sessions:42"))
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, provider := newTestRedisProvider(t)
	ctx := context.Background()

	_, err := provider.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))

	assert.True(t, errors.IsValidationError(provider.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("v"), 0)))
}

func TestRedisCacheProviderAdapter_Stats(t *testing.T) {
	_, provider := newTestRedisProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "hit", []byte("v"), time.Minute))
	_, _ = provider.Get(ctx, "hit")
	_, _ = provider.Get(ctx, "hit")
	_, _ = provider.Get(ctx, "miss")

	stats := provider.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(4), stats.TotalOps)
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestRedisCacheProviderAdapter_ServerFailure(t *testing.T) {
	mockRedis, provider := newTestRedisProvider(t)
	ctx := context.Background()

	mockRedis.Close()

	_, err := provider.Get(ctx, "weather:tokyo:forecast")
	assert.True(t, errors.IsType(err, errors.CacheError))
	assert.Error(t, provider.Ping(ctx))
}

func TestRedisCacheProviderAdapter_ContextCancellation(t *testing.T) {
	_, provider := newTestRedisProvider(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Get(ctx, "weather:london:current")
	assert.Error(t, err)
}
