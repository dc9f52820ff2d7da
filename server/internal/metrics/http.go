package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts ARM requests by method, route and status.
	// Requests that match no route are labelled "unmatched".
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azrest_emulator_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures request latency by method and route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "azrest_emulator_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures response bodies. ARM list pages are the
	// largest; a page of 50 resources is tens of kilobytes.
	HTTPResponseSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "azrest_emulator_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks requests being served.
	HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "azrest_emulator_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

func registerHTTPMetrics() error {
	return register(HTTPRequestsTotal, HTTPRequestDuration, HTTPResponseSize, HTTPRequestsInFlight)
}
