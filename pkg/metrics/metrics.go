package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	SubscriptionsActivated prometheus.Counter
	SubscriptionsPaused    prometheus.Counter
	SubscriptionsCancelled prometheus.Counter
	SubscriptionsCompleted prometheus.Counter
	TouchesResolved        *prometheus.CounterVec
	CyclesStarted          *prometheus.CounterVec
	ExportsCreated         prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   prometheus.Gauge

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets, // 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Business metrics
		SubscriptionsActivated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "subscriptions_activated_total",
			Help: "Total number of touch-sequence subscriptions activated",
		}),
		SubscriptionsPaused: promauto.NewCounter(prometheus.CounterOpts{
			Name: "subscriptions_paused_total",
			Help: "Total number of subscriptions paused",
		}),
		SubscriptionsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "subscriptions_cancelled_total",
			Help: "Total number of subscriptions cancelled",
		}),
		SubscriptionsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "subscriptions_completed_total",
			Help: "Total number of subscriptions completed",
		}),
		TouchesResolved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "touches_resolved_total",
				Help: "Total number of touches resolved",
			},
			[]string{"status"}, // completed, skipped
		),
		CyclesStarted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cycles_started_total",
				Help: "Total number of sequence cycles started",
			},
			[]string{"trigger"}, // activation, auto_repeat, user
		),
		ExportsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exports_created_total",
			Help: "Total number of touch-history exports created",
		}),

		// Database metrics
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"operation"}, // select, insert, update, delete
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),

		// Cache metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"}, // redis, memory
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/touches/:id)

			// Measure request size
			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordSubscriptionActivated increments the activation counter
func (m *Metrics) RecordSubscriptionActivated() {
	m.SubscriptionsActivated.Inc()
}

// RecordSubscriptionPaused increments the pause counter
func (m *Metrics) RecordSubscriptionPaused() {
	m.SubscriptionsPaused.Inc()
}

// RecordSubscriptionCancelled increments the cancellation counter
func (m *Metrics) RecordSubscriptionCancelled() {
	m.SubscriptionsCancelled.Inc()
}

// RecordSubscriptionCompleted increments the completion counter
func (m *Metrics) RecordSubscriptionCompleted() {
	m.SubscriptionsCompleted.Inc()
}

// RecordTouchResolved increments the touch resolution counter
func (m *Metrics) RecordTouchResolved(status string) {
	m.TouchesResolved.WithLabelValues(status).Inc()
}

// RecordCycleStarted increments the cycle counter
func (m *Metrics) RecordCycleStarted(trigger string) {
	m.CyclesStarted.WithLabelValues(trigger).Inc()
}

// RecordExportCreated increments exports created counter
func (m *Metrics) RecordExportCreated() {
	m.ExportsCreated.Inc()
}

// RecordDBQuery records database query duration
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	m.DBConnections.Set(count)
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
