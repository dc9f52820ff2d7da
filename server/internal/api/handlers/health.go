package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/server/internal/api/middleware"
)

// readinessTimeout bounds the database ping of a readiness probe.
const readinessTimeout = 2 * time.Second

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
//
// This handler provides liveness and readiness checks for container
// orchestrators and test harnesses waiting for the emulator to start.
type HealthHandler struct {
	db         Pinger
	instanceID string
}

// NewHealthHandler creates a new health check handler.
//
// Parameters:
//   - db: Store used for readiness checks
//   - instanceID: This emulator instance's UUID
func NewHealthHandler(db Pinger, instanceID string) *HealthHandler {
	return &HealthHandler{
		db:         db,
		instanceID: instanceID,
	}
}

// LivenessResponse represents the liveness probe response.
type LivenessResponse struct {
	Status     string `json:"status"`
	InstanceID string `json:"instanceId"`
}

// ReadinessResponse represents the readiness probe response.
type ReadinessResponse struct {
	Status     string `json:"status"`
	InstanceID string `json:"instanceId"`
	Database   string `json:"database"`
}

// Liveness handles GET /health/live.
//
// This endpoint always returns 200 OK as long as the HTTP server is running.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, LivenessResponse{
		Status:     "ok",
		InstanceID: h.instanceID,
	})
}

// Readiness handles GET /health/ready.
//
// Returns:
//   - 200 OK if the store answers a ping
//   - 503 Service Unavailable otherwise
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		middleware.GetLogger(c).Warn("readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ReadinessResponse{
			Status:     "unavailable",
			InstanceID: h.instanceID,
			Database:   "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, ReadinessResponse{
		Status:     "ready",
		InstanceID: h.instanceID,
		Database:   "connected",
	})
}
