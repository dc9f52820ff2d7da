package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RateLimitChecks counts rate limit checks by type and result.
	RateLimitChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azrest_emulator_ratelimit_checks_total",
			Help: "Total number of rate limit checks",
		},
		[]string{"limit_type", "allowed"},
	)

	// RateLimitBlocks counts rejected requests by type.
	RateLimitBlocks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azrest_emulator_ratelimit_blocks_total",
			Help: "Total number of requests rejected by the throttle",
		},
		[]string{"limit_type"},
	)

	// RateLimitBucketCapacity tracks the configured capacity of each bucket type.
	RateLimitBucketCapacity = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "azrest_emulator_ratelimit_bucket_capacity",
			Help: "Maximum capacity of rate limit buckets",
		},
		[]string{"limit_type"},
	)

	// RateLimitBuckets tracks the number of live buckets.
	RateLimitBuckets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "azrest_emulator_ratelimit_buckets",
			Help: "Number of rate limit buckets currently tracked",
		},
	)
)

func registerRateLimitMetrics() error {
	return register(RateLimitChecks, RateLimitBlocks, RateLimitBucketCapacity, RateLimitBuckets)
}
