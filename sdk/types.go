package sdk

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
)

// Header names used by Azure services.
const (
	HeaderAuthorization   = "Authorization"
	HeaderClientRequestID = "x-ms-client-request-id"
	HeaderRequestID       = "x-ms-request-id"
	HeaderErrorCode       = "x-ms-error-code"
	HeaderRetryAfter      = "Retry-After"
	HeaderIfMatch         = "If-Match"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderAcceptLanguage  = "Accept-Language"
)

// APIVersionParam is the query parameter carrying the API version.
const APIVersionParam = "api-version"

// Request describes one call before it is sent.
type Request struct {
	// Method is the HTTP method
	Method string

	// Path is relative to the client endpoint, or an absolute URL (next links)
	Path string

	// Query holds query parameters added to the URL
	Query url.Values

	// Header holds request headers
	Header http.Header

	// Body is the serialized request body, replayed on every retry
	Body []byte

	// ContentType is the Content-Type of Body
	ContentType string
}

// SetJSONBody marshals v as the request body.
func (r *Request) SetJSONBody(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	r.Body = data
	r.ContentType = "application/json"
	return nil
}

// SetXMLBody marshals v as the request body.
func (r *Request) SetXMLBody(v any) error {
	data, err := xml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	r.Body = append([]byte(xml.Header), data...)
	r.ContentType = "application/xml"
	return nil
}

// SetBody sets a raw body with the given content type.
func (r *Request) SetBody(contentType string, body []byte) {
	r.Body = body
	r.ContentType = contentType
}

// SetQuery sets a query parameter, skipping empty values.
func (r *Request) SetQuery(key, value string) {
	if value == "" {
		return
	}
	r.Query.Set(key, value)
}

// SetHeader sets a header, skipping empty values.
func (r *Request) SetHeader(key, value string) {
	if value == "" {
		return
	}
	r.Header.Set(key, value)
}

// Response is a fully read HTTP response.
type Response struct {
	// StatusCode is the HTTP status code
	StatusCode int

	// Header holds the response headers
	Header http.Header

	// Body is the complete response body
	Body []byte
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// DecodeXML unmarshals the body into v.
func (r *Response) DecodeXML(v any) error {
	if err := xml.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// RequestID returns the service request ID header.
func (r *Response) RequestID() string {
	return r.Header.Get(HeaderRequestID)
}

// Result is the outcome of an operation that can succeed with several
// status codes, e.g. a PUT answering 200 on replace and 201 on create.
type Result[T any] struct {
	StatusCode int
	Header     http.Header
	Value      T
}

// Created reports whether the service answered 201.
func (r *Result[T]) Created() bool {
	return r.StatusCode == http.StatusCreated
}

// Accepted reports whether the service answered 202.
func (r *Result[T]) Accepted() bool {
	return r.StatusCode == http.StatusAccepted
}

// AsyncOperation returns the Azure-AsyncOperation or Location header of an
// accepted long-running operation.
func (r *Result[T]) AsyncOperation() string {
	if v := r.Header.Get("Azure-AsyncOperation"); v != "" {
		return v
	}
	return r.Header.Get("Location")
}
