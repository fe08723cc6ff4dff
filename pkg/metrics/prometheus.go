// Package metrics provides Prometheus metrics for the matchtag service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the tagging service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Tagging Metrics
	eventsTagged         *prometheus.CounterVec
	eventsDeleted        prometheus.Counter
	eventsRejected       *prometheus.CounterVec
	ledgerEvents         prometheus.Gauge
	hotZoneEvents        *prometheus.GaugeVec
	stopwatchTransitions *prometheus.CounterVec

	// Session Metrics
	sessionsActive  prometheus.Gauge
	sessionsCreated prometheus.Counter
	sessionsDeleted prometheus.Counter

	// Export Metrics
	exports    *prometheus.CounterVec
	exportSize *prometheus.HistogramVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchtag",
		subsystem:        "tagger",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)

	m.eventsTagged = auto.NewCounterVec(
		m.counterOpts("events_tagged_total", "Total number of events appended to a ledger"),
		[]string{"team"},
	)
	m.eventsDeleted = auto.NewCounter(m.counterOpts("events_deleted_total", "Total number of events removed from a ledger"))
	m.eventsRejected = auto.NewCounterVec(
		m.counterOpts("events_rejected_total", "Total number of tag requests rejected before mutation"),
		[]string{"reason"},
	)
	m.ledgerEvents = auto.NewGauge(m.gaugeOpts("ledger_events", "Number of events held across all session ledgers"))
	m.hotZoneEvents = auto.NewGaugeVec(
		m.gaugeOpts("hot_zone_events", "Zone-tagged events across all sessions; zones past the label limit count as \"other\""),
		[]string{"zone"},
	)
	m.stopwatchTransitions = auto.NewCounterVec(
		m.counterOpts("stopwatch_transitions_total", "Stopwatch start/stop/reset calls"),
		[]string{"action"},
	)

	m.sessionsActive = auto.NewGauge(m.gaugeOpts("sessions_active", "Number of sessions held in the store"))
	m.sessionsCreated = auto.NewCounter(m.counterOpts("sessions_created_total", "Total number of sessions created"))
	m.sessionsDeleted = auto.NewCounter(m.counterOpts("sessions_deleted_total", "Total number of sessions deleted"))

	m.exports = auto.NewCounterVec(
		m.counterOpts("exports_total", "Total number of ledger exports by format"),
		[]string{"format"},
	)
	m.exportSize = auto.NewHistogramVec(
		m.histogramOpts("export_size_bytes", "Size of produced export files in bytes",
			prometheus.ExponentialBuckets(256, 4, 8)),
		[]string{"format"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
}

// RecordEventTagged increments the tagged events counter for a team.
func RecordEventTagged(team string) {
	globalManager.eventsTagged.WithLabelValues(team).Inc()
}

// RecordEventDeleted increments the deleted events counter.
func RecordEventDeleted() {
	globalManager.eventsDeleted.Inc()
}

// RecordEventRejected increments the rejected events counter.
func RecordEventRejected(reason string) {
	globalManager.eventsRejected.WithLabelValues(reason).Inc()
}

// UpdateLedgerEvents sets the number of events across all ledgers.
func UpdateLedgerEvents(count int) {
	globalManager.ledgerEvents.Set(float64(count))
}

// OtherZoneLabel is the hot-zone label shared by zones at or past the label limit.
const OtherZoneLabel = "other"

// UpdateHotZones replaces the hot-zone gauge with the given zone counts.
// Zones in [0, limit) keep their own label; the rest are summed under
// OtherZoneLabel so the series count stays bounded.
func UpdateHotZones(zones map[int]int, limit int) {
	byLabel := make(map[string]int, min(len(zones), limit+1))
	for zone, count := range zones {
		label := OtherZoneLabel
		if zone >= 0 && zone < limit {
			label = strconv.Itoa(zone)
		}
		byLabel[label] += count
	}

	globalManager.hotZoneEvents.Reset()
	for label, count := range byLabel {
		globalManager.hotZoneEvents.WithLabelValues(label).Set(float64(count))
	}
}

// RecordStopwatchTransition counts a stopwatch action (start, stop, reset).
func RecordStopwatchTransition(action string) {
	globalManager.stopwatchTransitions.WithLabelValues(action).Inc()
}

// UpdateSessionsActive sets the number of live sessions.
func UpdateSessionsActive(count int) {
	globalManager.sessionsActive.Set(float64(count))
}

// RecordSessionCreated increments the created sessions counter.
func RecordSessionCreated() {
	globalManager.sessionsCreated.Inc()
}

// RecordSessionDeleted increments the deleted sessions counter.
func RecordSessionDeleted() {
	globalManager.sessionsDeleted.Inc()
}

// RecordExport records a produced export and its size.
func RecordExport(format string, sizeBytes int) {
	globalManager.exports.WithLabelValues(format).Inc()
	globalManager.exportSize.WithLabelValues(format).Observe(float64(sizeBytes))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
