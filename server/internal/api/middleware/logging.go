// Package middleware provides HTTP middleware for the emulator.
//
// This package implements request logging, ARM request headers, bearer
// authentication, subscription throttling, metrics and CORS handling.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/server/internal/logging"
)

// ARM request and response headers.
const (
	HeaderRequestID            = "x-ms-request-id"
	HeaderCorrelationRequestID = "x-ms-correlation-request-id"
	HeaderClientRequestID      = "x-ms-client-request-id"
)

const (
	contextKeyLogger    = "logger"
	contextKeyRequestID = "request_id"
)

// RequestLogger creates a middleware that logs all HTTP requests using structured logging.
//
// This middleware:
// - Generates a request ID and returns it as x-ms-request-id
// - Echoes x-ms-client-request-id and x-ms-correlation-request-id
// - Stores a request-scoped logger in both Gin and request context
// - Logs request completion at a level chosen by status code
//
// Parameters:
//   - logger: Zap logger instance
//
// Returns:
//   - Gin middleware handler function
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		start := time.Now()

		correlationID := c.GetHeader(HeaderCorrelationRequestID)
		if correlationID == "" {
			correlationID = requestID
		}
		c.Header(HeaderRequestID, requestID)
		c.Header(HeaderCorrelationRequestID, correlationID)

		requestLogger := logger.With(
			zap.String(logging.FieldRequestID, requestID),
			zap.String(logging.FieldMethod, c.Request.Method),
			zap.String(logging.FieldPath, c.Request.URL.Path),
			zap.String(logging.FieldRemoteAddr, c.ClientIP()),
			zap.String(logging.FieldUserAgent, c.Request.UserAgent()),
		)
		if clientRequestID := c.GetHeader(HeaderClientRequestID); clientRequestID != "" {
			c.Header(HeaderClientRequestID, clientRequestID)
			requestLogger = requestLogger.With(zap.String(logging.FieldClientRequestID, clientRequestID))
		}
		if apiVersion := c.Query(QueryAPIVersion); apiVersion != "" {
			requestLogger = requestLogger.With(zap.String(logging.FieldAPIVersion, apiVersion))
		}

		c.Set(contextKeyLogger, requestLogger)
		c.Set(contextKeyRequestID, requestID)

		// Store in request context for non-gin code
		ctx := logging.WithLogger(c.Request.Context(), requestLogger)
		c.Request = c.Request.WithContext(ctx)

		requestLogger.Debug("request started")

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.Int(logging.FieldStatusCode, status),
			zap.Int64(logging.FieldDuration, duration.Milliseconds()),
			zap.Int("response_size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String(logging.FieldError, c.Errors.String()))
		}

		switch {
		case status >= 500:
			requestLogger.Error("request completed with server error", fields...)
		case status >= 400:
			requestLogger.Warn("request completed with client error", fields...)
		default:
			requestLogger.Info("request completed", fields...)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Gin context.
// Returns a no-op logger if not found.
func GetLogger(c *gin.Context) *zap.Logger {
	if logger, exists := c.Get(contextKeyLogger); exists {
		if l, ok := logger.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}

// GetRequestID retrieves the request ID from Gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(contextKeyRequestID); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
