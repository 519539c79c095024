package infrastructure

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
)

func TestPrometheusMetricsCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetricsCollector(reg)

	metrics.RecordCacheHit("kv", ports.WeatherKindCurrent)
	metrics.RecordCacheHit("kv", ports.WeatherKindCurrent)
	metrics.RecordCacheMiss("table", ports.WeatherKindForecast)
	metrics.RecordProviderCall(ports.WeatherKindCurrent, "success", 120*time.Millisecond)
	metrics.RecordHTTPRequest(http.MethodGet, "/api/weather/current/:city", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.cacheHits.WithLabelValues("kv", "current")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheMisses.WithLabelValues("table", "forecast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.providerCalls.WithLabelValues("current", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.httpRequests.WithLabelValues("GET", "/api/weather/current/:city", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "weatherdash_provider_call_duration_seconds")
	assert.Contains(t, names, "weatherdash_http_request_duration_seconds")
}

func TestPrometheusMetricsCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
	})
}
