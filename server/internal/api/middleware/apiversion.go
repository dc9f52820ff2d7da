package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// QueryAPIVersion is the query parameter every ARM request carries.
const QueryAPIVersion = "api-version"

// RequireAPIVersion rejects requests without an api-version query parameter.
func RequireAPIVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query(QueryAPIVersion) == "" {
			abortWithError(c, http.StatusBadRequest, CodeMissingAPIVersionParameter,
				"The api-version query parameter (?api-version=) is required for all requests.")
			return
		}
		c.Next()
	}
}
