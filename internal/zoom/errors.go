package zoom

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is an error reported by the Zoom API, i.e. a non-2xx response
// with a structured error body. Transport failures are never wrapped in an
// APIError; they surface as plain wrapped errors.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is Zoom's own error code from the response body, if present.
	Code int

	// Message is Zoom's error message, or the raw body when the response
	// was not valid JSON.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("zoom api: status %d (code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("zoom api: status %d: %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a non-2xx response body.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var payload struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}
	return apiErr
}

func statusIs(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsBadRequest reports whether err is a Zoom API error with status 400.
func IsBadRequest(err error) bool {
	return statusIs(err, http.StatusBadRequest)
}

// IsNotAuthorized reports whether err is a Zoom API error with status 401.
func IsNotAuthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a Zoom API error with status 404.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsNotAllowed reports whether err is a Zoom API error with status 405.
func IsNotAllowed(err error) bool {
	return statusIs(err, http.StatusMethodNotAllowed)
}

// IsConflict reports whether err is a Zoom API error with status 409.
func IsConflict(err error) bool {
	return statusIs(err, http.StatusConflict)
}
