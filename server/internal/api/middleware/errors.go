package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yaroslav/azrest/models"
)

// ARM error codes written by middleware.
const (
	CodeAuthenticationFailed       = "AuthenticationFailed"
	CodeTooManyRequests            = "TooManyRequests"
	CodeMissingAPIVersionParameter = "MissingApiVersionParameter"
)

// abortWithError writes an ARM error envelope and stops the chain.
func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.NewErrorResponse(code, message))
}
