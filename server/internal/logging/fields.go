// Package logging provides structured logging utilities for the azrest emulator.
package logging

// Standard field names for consistent logging across the emulator.
const (
	// FieldSubscriptionID is the subscription segment of a resource ID.
	FieldSubscriptionID = "subscription_id"

	// FieldResourceGroup is the resource group segment of a resource ID.
	FieldResourceGroup = "resource_group"

	// FieldResourceType is the fully qualified resource type.
	FieldResourceType = "resource_type"

	// FieldResourceID is the full resource ID being operated on.
	FieldResourceID = "resource_id"

	// FieldAPIVersion is the api-version query parameter of a request.
	FieldAPIVersion = "api_version"

	// FieldAction is the name of a POST action.
	FieldAction = "action"

	// FieldRequestID is the x-ms-request-id the emulator assigns.
	FieldRequestID = "request_id"

	// FieldClientRequestID is the x-ms-client-request-id a caller sent.
	FieldClientRequestID = "client_request_id"

	// FieldDuration is the duration of an operation in milliseconds.
	FieldDuration = "duration_ms"

	// FieldStatusCode is the HTTP status code of a response.
	FieldStatusCode = "status_code"

	// FieldMethod is the HTTP method of a request.
	FieldMethod = "method"

	// FieldPath is the URL path of an HTTP request.
	FieldPath = "path"

	// FieldRemoteAddr is the client's remote address.
	FieldRemoteAddr = "remote_addr"

	// FieldUserAgent is the client's user agent string.
	FieldUserAgent = "user_agent"

	// FieldError is the error message or description.
	FieldError = "error"

	// FieldComponent identifies the component generating the log.
	FieldComponent = "component"

	// FieldOperation identifies the store or service operation being performed.
	FieldOperation = "operation"
)
