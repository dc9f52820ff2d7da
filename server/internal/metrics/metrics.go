// Package metrics provides Prometheus metrics for the azrest emulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the global Prometheus registry for all metrics.
	Registry = prometheus.NewRegistry()

	// initialized tracks whether metrics have been initialized.
	initialized = false
)

// Init initializes the metrics registry with all collectors.
// This should be called once during application startup.
func Init() error {
	if initialized {
		return nil
	}

	// Register Go runtime collectors
	if err := Registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	if err := Registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return err
	}

	if err := registerHTTPMetrics(); err != nil {
		return err
	}
	if err := registerRateLimitMetrics(); err != nil {
		return err
	}
	if err := registerStoreMetrics(); err != nil {
		return err
	}
	if err := registerResourceMetrics(); err != nil {
		return err
	}

	initialized = true
	return nil
}

// MustInit initializes metrics and panics on error.
// Use this for application startup where metrics are required.
func MustInit() {
	if err := Init(); err != nil {
		panic("failed to initialize metrics: " + err.Error())
	}
}

// register adds collectors to Registry, stopping at the first failure.
func register(cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func registerResourceMetrics() error {
	return register(ResourceOperations, ActionsTotal, ResourcesStored)
}

var (
	// ResourceOperations counts resource operations by type, operation and result.
	ResourceOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azrest_emulator_resource_operations_total",
			Help: "Total number of resource operations",
		},
		[]string{"resource_type", "operation", "result"},
	)

	// ActionsTotal counts POST actions by name and result.
	ActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azrest_emulator_actions_total",
			Help: "Total number of resource actions",
		},
		[]string{"action", "result"},
	)

	// ResourcesStored tracks the number of stored resources per type.
	ResourcesStored = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "azrest_emulator_resources",
			Help: "Number of stored resources of each type",
		},
		[]string{"resource_type"},
	)
)
