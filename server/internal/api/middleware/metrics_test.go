package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yaroslav/azrest/server/internal/metrics"
)

func resetMetrics(t *testing.T) {
	t.Helper()

	metrics.Registry = prometheus.NewRegistry()
	metrics.HTTPRequestsTotal.Reset()
	if err := metrics.Init(); err != nil {
		t.Fatalf("Failed to initialize metrics: %v", err)
	}
}

func TestMetricsMiddleware_RoutePatternLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resetMetrics(t)

	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/subscriptions/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/subscriptions/a/x", "/subscriptions/b/y", "/subscriptions/c/z"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, w.Code)
		}
	}

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/subscriptions/*path", "200"))
	if got != 3 {
		t.Errorf("requests counted under route pattern = %v, want 3", got)
	}
}

func TestMetricsMiddleware_DifferentStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resetMetrics(t)

	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/success", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/notfound", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/error", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	tests := []struct {
		path   string
		status string
	}{
		{"/success", "200"},
		{"/notfound", "404"},
		{"/error", "500"},
	}

	for _, tt := range tests {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

		if got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, tt.path, tt.status)); got != 1 {
			t.Errorf("%s: counter = %v, want 1", tt.path, got)
		}
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resetMetrics(t)

	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/matched", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/random/path", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unmatched route, got %d", w.Code)
	}
	if got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404")); got != 1 {
		t.Errorf("unmatched counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.HTTPRequestsInFlight); got != 0 {
		t.Errorf("in-flight gauge = %v after request, want 0", got)
	}
}
