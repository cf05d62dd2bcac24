package paddle

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxErrorBodyLen bounds how much of a response body is embedded in errors.
const maxErrorBodyLen = 1000

// FieldError describes a validation failure for a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError represents an error returned by the Paddle API.
type APIError struct {
	StatusCode int

	// Code is Paddle's machine-readable error code, e.g. "entity_not_found".
	Code string
	// Detail is Paddle's human-readable description of the failure.
	Detail string
	// DocumentationURL links to Paddle's reference page for this error.
	DocumentationURL string
	// Errors holds per-field validation failures, if any.
	Errors []FieldError

	URL string
	Err error // Underlying error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("paddle api error: %d - %s at %s", e.StatusCode, e.Detail, e.URL)
	if e.Code != "" {
		msg = fmt.Sprintf("paddle api error: %d %s - %s at %s", e.StatusCode, e.Code, e.Detail, e.URL)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Unwrap implements errors.Unwrap so the underlying error can be extracted.
func (e *APIError) Unwrap() error {
	return e.Err
}

// RateLimitError represents an error indicating that the client is rate-limited.
// It can occur locally before the request is made or as a response from the API.
type RateLimitError struct {
	RetryAfter int // Suggested retry after duration in seconds, if provided by the API
	Err        error
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("paddle rate limit exceeded: retry after %d seconds", e.RetryAfter)
	}
	if e.Err != nil {
		return fmt.Sprintf("paddle rate limit exceeded: %v", e.Err)
	}
	return "paddle rate limit exceeded"
}

// Unwrap implements errors.Unwrap.
func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// AuthError represents an authentication or authorization failure (401, 403).
type AuthError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	msg := fmt.Sprintf("paddle auth error (%d): %s", e.StatusCode, e.Message)
	if e.Err != nil {
		msg += fmt.Sprintf(" - %v", e.Err)
	}
	return msg
}

// Unwrap implements errors.Unwrap.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// errorEnvelope is the JSON body Paddle returns for failed requests.
type errorEnvelope struct {
	Error struct {
		Type             string       `json:"type"`
		Code             string       `json:"code"`
		Detail           string       `json:"detail"`
		DocumentationURL string       `json:"documentation_url"`
		Errors           []FieldError `json:"errors"`
	} `json:"error"`
	Meta Meta `json:"meta"`
}

// mapHTTPError is a helper to convert an unsuccessful HTTP response to an appropriate custom error.
func mapHTTPError(resp *http.Response, body []byte) error {
	baseErr := &APIError{
		StatusCode: resp.StatusCode,
		Detail:     truncateBody(body),
		URL:        resp.Request.URL.String(),
	}

	// Paddle errors usually carry a structured envelope; prefer it when present.
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Code != "" {
		baseErr.Code = env.Error.Code
		baseErr.Detail = env.Error.Detail
		baseErr.DocumentationURL = env.Error.DocumentationURL
		baseErr.Errors = env.Error.Errors
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{
			StatusCode: resp.StatusCode,
			Message:    "authentication failed or forbidden",
			Err:        baseErr,
		}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			Err: baseErr,
		}
	default:
		return baseErr
	}
}

// truncateBody caps raw response bodies before they are embedded in error messages.
func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyLen {
		return string(body[:maxErrorBodyLen]) + "..."
	}
	return string(body)
}
