package models

import (
	"encoding/json"
	"errors"
)

// Common error types used by the emulator and shared with clients.
// Each maps to one ARM error code and HTTP status.

var (
	// ErrNotFound indicates the requested resource does not exist.
	// HTTP equivalent: 404 Not Found (code ResourceNotFound)
	ErrNotFound = errors.New("resource not found")

	// ErrParentNotFound indicates the parent of the requested resource does not exist.
	// HTTP equivalent: 404 Not Found (code ParentResourceNotFound)
	ErrParentNotFound = errors.New("parent resource not found")

	// ErrActionNotSupported indicates a POST action the provider does not implement.
	// HTTP equivalent: 404 Not Found (code ActionNotSupported)
	ErrActionNotSupported = errors.New("action not supported")

	// ErrUnauthorized indicates the request lacks a valid bearer token.
	// HTTP equivalent: 401 Unauthorized (code AuthenticationFailed)
	ErrUnauthorized = errors.New("authentication failed")

	// ErrInvalidRequest indicates the request body or parameters are invalid.
	// HTTP equivalent: 400 Bad Request (code InvalidRequestContent)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingAPIVersion indicates the api-version query parameter is absent.
	// HTTP equivalent: 400 Bad Request (code MissingApiVersionParameter)
	ErrMissingAPIVersion = errors.New("the api-version query parameter is required")

	// ErrInvalidResourceID indicates the request path is not a valid resource ID.
	// HTTP equivalent: 400 Bad Request (code InvalidResourceId)
	ErrInvalidResourceID = errors.New("invalid resource id")

	// ErrInvalidResourceName indicates the resource name violates ARM naming rules.
	// HTTP equivalent: 400 Bad Request (code InvalidResourceName)
	ErrInvalidResourceName = errors.New("invalid resource name")

	// ErrConflict indicates the resource is in a state that forbids the operation.
	// HTTP equivalent: 409 Conflict (code Conflict)
	ErrConflict = errors.New("conflict")

	// ErrPreconditionFailed indicates an If-Match or If-None-Match check failed.
	// HTTP equivalent: 412 Precondition Failed (code PreconditionFailed)
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrThrottled indicates the subscription exceeded its request budget.
	// HTTP equivalent: 429 Too Many Requests (code TooManyRequests)
	ErrThrottled = errors.New("too many requests")

	// ErrInternalError indicates an unexpected server-side error.
	// HTTP equivalent: 500 Internal Server Error (code InternalServerError)
	ErrInternalError = errors.New("internal server error")
)

// ErrorResponse is the error body returned by every ARM API.
type ErrorResponse struct {
	// Error describes what went wrong
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a single error, optionally with nested details.
type ErrorDetail struct {
	// Code is a machine-readable error code, e.g. "ResourceNotFound"
	Code *string `json:"code,omitempty"`

	// Message is the human-readable error message
	Message *string `json:"message,omitempty"`

	// Target is the element the error refers to, if any
	Target *string `json:"target,omitempty"`

	// Details lists nested errors
	Details []ErrorDetail `json:"details,omitempty"`

	// AdditionalInfo carries provider-specific data
	AdditionalInfo []ErrorAdditionalInfo `json:"additionalInfo,omitempty"`
}

// ErrorAdditionalInfo is provider-specific error data.
type ErrorAdditionalInfo struct {
	// Type names the shape of Info
	Type *string `json:"type,omitempty"`

	// Info is the free-form payload
	Info json.RawMessage `json:"info,omitempty"`
}

// NewErrorResponse builds an error envelope with a code and message.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: &ErrorDetail{Code: &code, Message: &message}}
}

// CodeAndMessage returns the top-level code and message, or empty strings.
func (e ErrorResponse) CodeAndMessage() (string, string) {
	if e.Error == nil {
		return "", ""
	}
	var code, message string
	if e.Error.Code != nil {
		code = *e.Error.Code
	}
	if e.Error.Message != nil {
		message = *e.Error.Message
	}
	return code, message
}
