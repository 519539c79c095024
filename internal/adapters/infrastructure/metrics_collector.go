package infrastructure

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherdash.app/internal/ports"
)

// PrometheusMetricsCollector implements the MetricsCollector port with prometheus collectors
type PrometheusMetricsCollector struct {
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	providerCalls    *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewPrometheusMetricsCollector registers the collectors with reg
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdash",
			Name:      "cache_hits_total",
			Help:      "Fresh weather payloads served from a cache tier.",
		}, []string{"tier", "kind"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdash",
			Name:      "cache_misses_total",
			Help:      "Cache tier lookups that were absent, stale or failed.",
		}, []string{"tier", "kind"}),
		providerCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdash",
			Name:      "provider_calls_total",
			Help:      "Weather provider calls by outcome.",
		}, []string{"kind", "outcome"}),
		providerDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weatherdash",
			Name:      "provider_call_duration_seconds",
			Help:      "Weather provider call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdash",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weatherdash",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(tier string, kind ports.WeatherKind) {
	m.cacheHits.WithLabelValues(tier, string(kind)).Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(tier string, kind ports.WeatherKind) {
	m.cacheMisses.WithLabelValues(tier, string(kind)).Inc()
}

func (m *PrometheusMetricsCollector) RecordProviderCall(kind ports.WeatherKind, outcome string, duration time.Duration) {
	m.providerCalls.WithLabelValues(string(kind), outcome).Inc()
	m.providerDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
