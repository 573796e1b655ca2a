// Package metrics provides centralized Prometheus metrics for the service.
// All metrics are registered with the default registry and exposed via the
// /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance.
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Buckets cover fast in-memory responses (5-25ms) through slow upload
	// processing (up to 10s) for usable p95/p99 readings.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPRequestSize measures HTTP request body size in bytes.
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes.
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Business metrics track summarize pipeline outcomes.
var (
	// SummariesTotal counts summarize operations by input source kind
	// (text/file/image/none) and status (success/rejected).
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_total",
			Help: "Total number of summarize operations",
		},
		[]string{"source", "status"},
	)

	// SummaryDuration measures the time taken by the summarize pipeline.
	SummaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_duration_seconds",
			Help:    "Time taken to resolve and format a summary",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	// SummarySize measures produced summary length in characters.
	SummarySize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_size_chars",
			Help:    "Length of produced summaries in characters",
			Buckets: prometheus.LinearBuckets(40, 60, 10),
		},
	)
)
