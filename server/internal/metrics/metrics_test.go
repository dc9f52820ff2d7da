package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func resetRegistry() {
	initialized = false
	Registry = prometheus.NewRegistry()
}

func TestInit(t *testing.T) {
	resetRegistry()

	if err := Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if !initialized {
		t.Error("Expected initialized to be true after Init()")
	}
}

func TestInit_MultipleCallsAreIdempotent(t *testing.T) {
	resetRegistry()

	if err := Init(); err != nil {
		t.Fatalf("First Init() failed: %v", err)
	}
	if err := Init(); err != nil {
		t.Errorf("Second Init() returned error: %v", err)
	}
}

func TestMustInit(t *testing.T) {
	resetRegistry()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustInit() panicked: %v", r)
		}
	}()

	MustInit()

	if !initialized {
		t.Error("Expected initialized to be true after MustInit()")
	}
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name     string
		register func() error
	}{
		{"http", registerHTTPMetrics},
		{"ratelimit", registerRateLimitMetrics},
		{"store", registerStoreMetrics},
		{"resource", registerResourceMetrics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Registry
			Registry = prometheus.NewRegistry()
			defer func() { Registry = original }()

			if err := tt.register(); err != nil {
				t.Fatalf("register failed: %v", err)
			}
			if err := tt.register(); err == nil {
				t.Error("registering twice should fail")
			}
		})
	}
}

func TestObserveQuery(t *testing.T) {
	resetRegistry()
	if err := Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	before := testutil.ToFloat64(StoreQueriesTotal.WithLabelValues("test_get", "ok"))
	beforeErr := testutil.ToFloat64(StoreQueriesTotal.WithLabelValues("test_get", "error"))

	ObserveQuery("test_get", time.Now(), nil)
	ObserveQuery("test_get", time.Now(), nil)
	ObserveQuery("test_get", time.Now(), errors.New("boom"))

	if got := testutil.ToFloat64(StoreQueriesTotal.WithLabelValues("test_get", "ok")) - before; got != 2 {
		t.Errorf("success count delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(StoreQueriesTotal.WithLabelValues("test_get", "error")) - beforeErr; got != 1 {
		t.Errorf("error count delta = %v, want 1", got)
	}
}

func TestObservePool(t *testing.T) {
	ObservePool(3, 1, 2, 4)

	if got := testutil.ToFloat64(StoreConnections.WithLabelValues("open")); got != 3 {
		t.Errorf("open = %v, want 3", got)
	}
	if got := testutil.ToFloat64(StoreConnections.WithLabelValues("idle")); got != 1 {
		t.Errorf("idle = %v, want 1", got)
	}
	if got := testutil.ToFloat64(StoreConnections.WithLabelValues("in_use")); got != 2 {
		t.Errorf("in use = %v, want 2", got)
	}
	if got := testutil.ToFloat64(StoreConnections.WithLabelValues("max_open")); got != 4 {
		t.Errorf("max open = %v, want 4", got)
	}
}

func TestResourceMetrics_Collection(t *testing.T) {
	resetRegistry()
	if err := Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	ResourceOperations.WithLabelValues("Microsoft.Cache/redisEnterprise", "put", "created").Inc()
	ActionsTotal.WithLabelValues("listKeys", "success").Inc()
	ResourcesStored.WithLabelValues("microsoft.cache/redisenterprise").Set(2)

	count, err := testutil.GatherAndCount(Registry,
		"azrest_emulator_resource_operations_total",
		"azrest_emulator_actions_total",
		"azrest_emulator_resources",
	)
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count < 3 {
		t.Errorf("gathered %d series, want at least 3", count)
	}
}
