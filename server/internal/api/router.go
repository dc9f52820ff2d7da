// Package api provides the HTTP layer of the emulator.
//
// This package wires routing, middleware and handlers together. Every ARM
// path is served by one resource handler on top of the service layer.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/server/internal/api/handlers"
	"github.com/yaroslav/azrest/server/internal/api/middleware"
	"github.com/yaroslav/azrest/server/internal/metrics"
	"github.com/yaroslav/azrest/server/internal/service"
	"github.com/yaroslav/azrest/server/internal/store"
)

// RouterConfig holds configuration for setting up the HTTP router.
type RouterConfig struct {
	// Store is the resource store.
	Store *store.Store

	// Logger is the Zap logger for request logging.
	Logger *zap.Logger

	// Token is the bearer token clients must present. Empty disables auth.
	Token string

	// InstanceID is this emulator instance's UUID.
	InstanceID string

	// PublicURL overrides the base URL used in nextLink and async
	// operation headers. Empty derives it from the request.
	PublicURL string

	// AllowOrigins is the list of allowed CORS origins.
	// Use []string{"*"} to allow all origins.
	AllowOrigins []string

	// Throttler applies subscription budgets and counts auth failures.
	// Nil disables throttling. The caller owns it and stops it.
	Throttler *middleware.Throttler
}

// armMethods are the methods served on resource paths.
var armMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodPost,
}

// SetupRouter creates and configures the Gin HTTP router with all routes and middleware.
//
// This function sets up:
// - Global middleware (recovery, metrics, request logging, CORS)
// - Health check and metrics endpoints (no auth required)
// - ARM resource endpoints under /subscriptions and /providers
//
// Parameters:
//   - config: Router configuration
//
// Returns:
//   - Configured Gin engine ready to serve requests
func SetupRouter(config *RouterConfig) *gin.Engine {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Recovery middleware (recover from panics)
	router.Use(gin.Recovery())

	// Metrics middleware (should be early to capture all requests)
	router.Use(middleware.MetricsMiddleware())

	router.Use(middleware.RequestLogger(logger))

	if len(config.AllowOrigins) > 0 {
		router.Use(middleware.CORS(config.AllowOrigins))
	}

	resourceService := service.NewResourceService(config.Store, logger)
	resourceHandler := handlers.NewResourceHandler(resourceService, config.PublicURL)
	healthHandler := handlers.NewHealthHandler(config.Store, config.InstanceID)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		metrics.Registry,
		promhttp.HandlerOpts{},
	)))

	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Liveness)
		health.GET("/ready", healthHandler.Readiness)
	}

	arm := router.Group("")
	arm.Use(middleware.BearerAuth(config.Token, config.Throttler))
	if config.Throttler != nil {
		arm.Use(config.Throttler.Subscription())
	}
	arm.Use(middleware.RequireAPIVersion())
	for _, method := range armMethods {
		arm.Handle(method, "/subscriptions/*path", resourceHandler.Handle)
		arm.Handle(method, "/providers/*path", resourceHandler.Handle)
	}

	return router
}
