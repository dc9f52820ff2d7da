package sdk

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yaroslav/azrest/models"
)

// Common SDK errors that clients can check for specific error handling.
var (
	// ErrInvalidConfig indicates the client configuration is invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrMissingCredential indicates no token credential was configured.
	ErrMissingCredential = errors.New("missing token credential")

	// ErrMissingParameter indicates a required path parameter was empty.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnauthorized indicates the provided credentials are invalid.
	ErrUnauthorized = errors.New("unauthorized: invalid credentials")

	// ErrForbidden indicates the caller lacks permission for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates the request conflicts with existing state.
	ErrConflict = errors.New("conflict with existing resource")

	// ErrPreconditionFailed indicates an If-Match or If-None-Match check failed.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrRateLimited indicates the request was rate limited by the server.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServerError indicates an internal server error occurred.
	ErrServerError = errors.New("internal server error")

	// ErrNoMorePages is returned by Pager.NextPage after the last page.
	ErrNoMorePages = errors.New("no more pages")

	// ErrPollTerminalFailure indicates a polled resource reached Failed or Canceled.
	ErrPollTerminalFailure = errors.New("resource reached a failed terminal state")
)

// ResponseError is returned when a service answers with a status code the
// operation does not expect.
type ResponseError struct {
	// StatusCode is the HTTP status code
	StatusCode int

	// ErrorCode is the service error code, from x-ms-error-code or the body
	ErrorCode string

	// Message is the service error message, if the body carried one
	Message string

	// RequestID is the x-ms-request-id response header
	RequestID string

	// Body is the raw response body
	Body []byte
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unexpected status %d", e.StatusCode)
	if e.ErrorCode != "" {
		fmt.Fprintf(&b, " (%s)", e.ErrorCode)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " [request id %s]", e.RequestID)
	}
	return b.String()
}

// Is maps the status code to the matching sentinel error.
func (e *ResponseError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	case ErrPreconditionFailed:
		return e.StatusCode == http.StatusPreconditionFailed
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrServerError:
		return e.StatusCode >= 500
	}
	return false
}

// storageError is the XML error body returned by Azure Storage.
type storageError struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}

// newResponseError builds a ResponseError from an unexpected response.
func newResponseError(resp *Response) *ResponseError {
	rerr := &ResponseError{
		StatusCode: resp.StatusCode,
		ErrorCode:  resp.Header.Get(HeaderErrorCode),
		RequestID:  resp.RequestID(),
		Body:       resp.Body,
	}

	if len(resp.Body) == 0 {
		return rerr
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "xml") {
		var se storageError
		if err := xml.Unmarshal(resp.Body, &se); err == nil {
			if rerr.ErrorCode == "" {
				rerr.ErrorCode = se.Code
			}
			rerr.Message = strings.TrimSpace(se.Message)
		}
		return rerr
	}

	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body, &envelope); err == nil {
		code, message := envelope.CodeAndMessage()
		if rerr.ErrorCode == "" {
			rerr.ErrorCode = code
		}
		rerr.Message = message
	}

	return rerr
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StatusCode returns the HTTP status of a ResponseError, or 0.
func StatusCode(err error) int {
	var rerr *ResponseError
	if errors.As(err, &rerr) {
		return rerr.StatusCode
	}
	return 0
}
