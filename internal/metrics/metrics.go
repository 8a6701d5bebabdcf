// Package metrics exposes the Prometheus collectors used across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts processed HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ceom_http_requests_total",
			Help: "Total number of HTTP requests processed, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ceom_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	authErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ceom_auth_errors_total",
			Help: "Authentication failures, by reason.",
		},
		[]string{"reason"},
	)
)

// RecordAuthError increments the auth failure counter for the given reason.
func RecordAuthError(reason string) {
	authErrors.WithLabelValues(reason).Inc()
}
