// Package metrics provides Prometheus metrics for the voyago recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the voyago service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics - recommendation flow
	recommendationRequests prometheus.Counter
	unknownUserRequests    prometheus.Counter
	itemsScored            prometheus.Counter
	scoringLatency         prometheus.Histogram
	intentTagsPerQuery     prometheus.Histogram

	// Engagement Metrics - mirrors the analytics accumulator
	impressionsRecorded prometheus.Counter
	clicksRecorded      prometheus.Counter
	bookingsRecorded    prometheus.Counter
	analyticsResets     prometheus.Counter

	// Operational Health Metrics
	catalogItems prometheus.Gauge
	seededUsers  prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorsByEndpoint *prometheus.CounterVec
	errorsByType     *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "voyago",
		subsystem:        "recs",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recommendationRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendation_requests_total",
		Help:      "Total number of recommendation requests served",
	})

	m.unknownUserRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unknown_user_requests_total",
		Help:      "Total number of recommendation requests rejected for an unknown user id",
	})

	m.itemsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "items_scored_total",
		Help:      "Total number of catalog items scored across all requests",
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Histogram of full three-catalog ranking latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.intentTagsPerQuery = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "intent_tags_per_query",
		Help:      "Histogram of intent tags extracted per free-text query",
		Buckets:   []float64{0, 1, 2, 4, 8, 16},
	})

	m.impressionsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "impressions_total",
		Help:      "Total number of impression events recorded",
	})

	m.clicksRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "clicks_total",
		Help:      "Total number of click events recorded",
	})

	m.bookingsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bookings_total",
		Help:      "Total number of booking events recorded",
	})

	m.analyticsResets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analytics_resets_total",
		Help:      "Total number of analytics accumulator resets",
	})

	m.catalogItems = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_items",
		Help:      "Number of items loaded across all catalogs",
	})

	m.seededUsers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seeded_users",
		Help:      "Number of seeded user profiles",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of errors by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Total number of errors by type and severity",
	}, []string{"error_type", "severity"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Package-level helpers recording through the global manager.

// RecordRecommendationRequest increments the served-request counter.
func RecordRecommendationRequest() {
	globalManager.recommendationRequests.Inc()
}

// RecordUnknownUserRequest increments the rejected-request counter.
func RecordUnknownUserRequest() {
	globalManager.unknownUserRequests.Inc()
}

// RecordItemsScored adds n to the scored-items counter.
func RecordItemsScored(n int) {
	globalManager.itemsScored.Add(float64(n))
}

// RecordScoringLatency observes one full ranking pass duration.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordIntentTags observes the number of tags extracted from one query.
func RecordIntentTags(count int) {
	globalManager.intentTagsPerQuery.Observe(float64(count))
}

// RecordImpressions adds n to the impression counter.
func RecordImpressions(n int) {
	globalManager.impressionsRecorded.Add(float64(n))
}

// RecordClick increments the click counter.
func RecordClick() {
	globalManager.clicksRecorded.Inc()
}

// RecordBooking increments the booking counter.
func RecordBooking() {
	globalManager.bookingsRecorded.Inc()
}

// RecordAnalyticsReset increments the reset counter.
func RecordAnalyticsReset() {
	globalManager.analyticsResets.Inc()
}

// UpdateCatalogItems sets the loaded-catalog gauge.
func UpdateCatalogItems(count int) {
	globalManager.catalogItems.Set(float64(count))
}

// UpdateSeededUsers sets the seeded-users gauge.
func UpdateSeededUsers(count int) {
	globalManager.seededUsers.Set(float64(count))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint counts one error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType counts one error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystemMemoryUsage sets the allocated-memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime observes one GC pause duration.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
