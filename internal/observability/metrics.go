package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vex_http_requests_total",
			Help: "Total HTTP requests by path, method and status",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vex_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vex_errors_total",
			Help: "Total domain errors returned to callers",
		},
		[]string{"path", "method", "code"},
	)

	entityCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vex_entities_total",
			Help: "Current number of stored entities per kind",
		},
		[]string{"kind"},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vex_events_published_total",
			Help: "Total domain events published",
		},
		[]string{"type"},
	)
)

// RecordRequest updates request counters and latency.
func RecordRequest(path, method string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError counts a domain error by code.
func RecordError(path, method, code string) {
	errorsTotal.WithLabelValues(path, method, code).Inc()
}

// SetEntityCount tracks the size of an entity table.
func SetEntityCount(kind string, n int) {
	entityCount.WithLabelValues(kind).Set(float64(n))
}

// RecordEvent counts a published domain event.
func RecordEvent(eventType string) {
	eventsPublished.WithLabelValues(eventType).Inc()
}
