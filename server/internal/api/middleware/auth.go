package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/pkg/token"
	"github.com/yaroslav/azrest/server/internal/logging"
)

const (
	headerAuthorization   = "Authorization"
	headerWWWAuthenticate = "WWW-Authenticate"
	bearerPrefix          = "Bearer "

	// wwwAuthenticate points clients at the AAD authority like ARM does.
	wwwAuthenticate = `Bearer authorization_uri="https://login.microsoftonline.com/common", error="invalid_token", error_description="The authentication failed because of missing 'Authorization' header or invalid token."`
)

// BearerAuth creates middleware that requires a static bearer token.
//
// This middleware:
// - Passes every request when expected is empty
// - Compares the presented token in constant time
// - Counts failures per client IP and answers 429 once the budget is spent
// - Answers 401 AuthenticationFailed with a WWW-Authenticate challenge
//
// Parameters:
//   - expected: Token clients must present
//   - throttler: Tracks authentication failures; may be nil
//
// Returns:
//   - Gin middleware handler function
func BearerAuth(expected string, throttler *Throttler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		header := c.GetHeader(headerAuthorization)
		if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) &&
			token.Equal(strings.TrimSpace(header[len(bearerPrefix):]), expected) {
			c.Next()
			return
		}

		GetLogger(c).Warn("authentication failed",
			zap.Bool("header_present", header != ""),
			zap.String(logging.FieldRemoteAddr, c.ClientIP()),
		)

		if throttler != nil {
			if decision := throttler.AuthFailure(c); !decision.Allowed {
				c.Header("Retry-After", strconv.Itoa(decision.RetryAfter))
				abortWithError(c, http.StatusTooManyRequests, CodeTooManyRequests,
					"Too many failed authentication attempts. Please try again later.")
				return
			}
		}

		c.Header(headerWWWAuthenticate, wwwAuthenticate)
		abortWithError(c, http.StatusUnauthorized, CodeAuthenticationFailed,
			"Authentication failed. The 'Authorization' header is missing or the token is invalid.")
	}
}
