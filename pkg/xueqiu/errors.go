package xueqiu

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
)

// AuthError is returned when an endpoint requires a credential but none is
// configured on the client. It is raised before any network attempt and is
// never retried.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "this endpoint requires a Xueqiu cookie"
}

// HTTPError is returned for a non-retryable 4xx status, or for a retryable
// 429/5xx once the attempt budget is exhausted. Body holds at most the first
// 2000 bytes of the response.
type HTTPError struct {
	StatusCode int
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("HTTP %d for %s %s", e.StatusCode, e.Method, e.URL)
	if e.Body != "" {
		return msg + ": " + e.Body
	}

	return msg
}

// DecodeError is returned when a response body is not valid JSON after the
// attempt budget is exhausted; a transient decode failure is retried like a
// transport failure. Body holds at most the first 2000 bytes of the response.
type DecodeError struct {
	URL     string
	Method  string
	Message string
	Body    string
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("failed to decode JSON for %s %s: %s", e.Method, e.URL, e.Message)
	if e.Body != "" {
		return msg + ": " + e.Body
	}

	return msg
}

// APIError is an envelope-level failure: the HTTP exchange and JSON decode
// succeeded, but the payload signals a nonzero error code or an explicit
// success=false. It is never retried. Payload carries the full decoded
// envelope for diagnostics.
type APIError struct {
	ErrorCode        int
	ErrorDescription string
	URL              string
	Method           string
	Payload          json.RawMessage
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("xueqiu API error %d for %s %s", e.ErrorCode, e.Method, e.URL)
	if e.ErrorDescription != "" {
		return msg + ": " + e.ErrorDescription
	}

	return msg
}

// SchemaError is returned when a payload's shape is incompatible with the
// requested response type. It is never retried; the wrapped error carries the
// offending field path as reported by encoding/json.
type SchemaError struct {
	URL    string
	Method string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response for %s %s did not match schema: %v", e.Method, e.URL, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is an APIError with the given code.
func IsAPIError(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode == code
	}

	return false
}

// IsRateLimited reports whether err is an HTTPError for status 429.
func IsRateLimited(err error) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429
	}

	return false
}
