// Package types holds the JSON envelopes every storefront endpoint answers
// with, so clients decode one shape for success and one for failure.
package types

// RequestIDHeader carries the per-request correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

// SuccessEnvelope wraps a successful payload: {"data": ...}.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public face of a failed request. Details is only present
// for codes whose metadata allows it. RequestID echoes the X-Request-Id the
// server answered with so a toast can be matched to the server log line.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorEnvelope wraps a failure: {"error": {...}}.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// NewError builds an error envelope.
func NewError(code, message string, details any, requestID string) ErrorEnvelope {
	return ErrorEnvelope{Error: APIError{Code: code, Message: message, Details: details, RequestID: requestID}}
}
