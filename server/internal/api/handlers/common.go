// Package handlers provides HTTP handlers for the emulator.
//
// This package implements the ARM resource endpoints, the provider
// operation catalogs and health checks.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/server/internal/api/middleware"
	"github.com/yaroslav/azrest/server/internal/armid"
	"github.com/yaroslav/azrest/server/internal/service"
)

// errorMapping pairs a sentinel with its status code and ARM error code.
type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings is checked in order with errors.Is.
var errorMappings = []errorMapping{
	{models.ErrParentNotFound, http.StatusNotFound, "ParentResourceNotFound"},
	{models.ErrNotFound, http.StatusNotFound, "ResourceNotFound"},
	{models.ErrActionNotSupported, http.StatusNotFound, "ActionNotSupported"},
	{models.ErrUnauthorized, http.StatusUnauthorized, middleware.CodeAuthenticationFailed},
	{models.ErrMissingAPIVersion, http.StatusBadRequest, middleware.CodeMissingAPIVersionParameter},
	{models.ErrInvalidResourceID, http.StatusBadRequest, "InvalidResourceId"},
	{armid.ErrInvalidID, http.StatusBadRequest, "InvalidResourceId"},
	{models.ErrInvalidResourceName, http.StatusBadRequest, "InvalidResourceName"},
	{models.ErrInvalidRequest, http.StatusBadRequest, "InvalidRequestContent"},
	{models.ErrConflict, http.StatusConflict, "Conflict"},
	{models.ErrPreconditionFailed, http.StatusPreconditionFailed, "PreconditionFailed"},
	{models.ErrThrottled, http.StatusTooManyRequests, middleware.CodeTooManyRequests},
}

const (
	codeInternalServerError    = "InternalServerError"
	messageInternalServerError = "An internal error occurred. Please retry the request."
)

// statusFor maps an error to its HTTP status code and ARM error code.
// Unknown errors map to 500 InternalServerError.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, codeInternalServerError
}

// respondError sends an ARM error envelope for err.
//
// Messages of *service.Error values are returned to the client. Anything
// else is logged and answered with a generic message so internal details
// such as SQL errors never leak.
//
// Parameters:
//   - c: Gin context
//   - err: Error from the service layer or request parsing
func respondError(c *gin.Context, err error) {
	status, code := statusFor(err)

	message := err.Error()
	var svcErr *service.Error
	switch {
	case errors.As(err, &svcErr):
		message = svcErr.Message
	case status == http.StatusInternalServerError:
		middleware.GetLogger(c).Error("request failed", zap.Error(err))
		message = messageInternalServerError
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.NewErrorResponse(code, message))
}
