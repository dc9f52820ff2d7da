package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	corsAllowHeaders = strings.Join([]string{
		"Authorization", "Content-Type", "If-Match", "If-None-Match",
		HeaderClientRequestID, HeaderCorrelationRequestID,
	}, ", ")

	corsExposeHeaders = strings.Join([]string{
		"ETag", "Location", "Retry-After", "Azure-AsyncOperation",
		HeaderRequestID, HeaderCorrelationRequestID, HeaderClientRequestID,
		HeaderRemainingReads, HeaderRemainingWrites,
	}, ", ")
)

// CORS creates a middleware that handles Cross-Origin Resource Sharing.
//
// Browser-based tools such as portal mock-ups call the emulator from a
// different origin.
//
// Parameters:
//   - allowOrigins: List of allowed origins (e.g., ["http://localhost:3000"])
//     Use ["*"] to allow all origins
//
// Returns:
//   - Gin middleware handler function
func CORS(allowOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := false
		for _, allowedOrigin := range allowOrigins {
			if allowedOrigin == "*" || allowedOrigin == origin {
				allowed = true
				break
			}
		}

		if allowed {
			if origin != "" {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			} else if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
				c.Header("Access-Control-Allow-Origin", "*")
			}

			c.Header("Access-Control-Allow-Methods", "GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
			c.Header("Access-Control-Expose-Headers", corsExposeHeaders)
			c.Header("Access-Control-Max-Age", "86400") // 24 hours

			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
		}

		c.Next()
	}
}
