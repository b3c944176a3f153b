// Package observability holds Prometheus collectors and the OpenTelemetry
// tracer bootstrap shared across the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkwell_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ValidationFailures counts rejected requests by resource.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_validation_failures_total",
		Help: "Total number of requests rejected by field validation",
	}, []string{"resource"})

	// AccessDenied counts policy denials by resource and operation.
	AccessDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_access_denied_total",
		Help: "Total number of requests denied by the access policy",
	}, []string{"resource", "operation"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
