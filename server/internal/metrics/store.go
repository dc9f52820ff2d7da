package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// StoreQueryDuration measures resource store queries by operation
	// (get, list, mutate, delete and the key queries).
	StoreQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "azrest_emulator_store_query_duration_seconds",
			Help:    "Resource store query duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"operation"},
	)

	// StoreQueriesTotal counts resource store queries by operation and result.
	StoreQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azrest_emulator_store_queries_total",
			Help: "Total number of resource store queries",
		},
		[]string{"operation", "result"},
	)

	// StoreConnections reports the sqlite connection pool by state:
	// open, idle, in_use and max_open.
	StoreConnections = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "azrest_emulator_store_connections",
			Help: "sqlite connection pool statistics",
		},
		[]string{"state"},
	)
)

func registerStoreMetrics() error {
	return register(StoreQueryDuration, StoreQueriesTotal, StoreConnections)
}

// ObserveQuery records the duration and outcome of one store query.
func ObserveQuery(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	StoreQueriesTotal.WithLabelValues(operation, result).Inc()
}

// ObservePool copies connection pool statistics into StoreConnections.
func ObservePool(open, idle, inUse, maxOpen int) {
	StoreConnections.WithLabelValues("open").Set(float64(open))
	StoreConnections.WithLabelValues("idle").Set(float64(idle))
	StoreConnections.WithLabelValues("in_use").Set(float64(inUse))
	StoreConnections.WithLabelValues("max_open").Set(float64(maxOpen))
}
