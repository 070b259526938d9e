package rollsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared by server and client. They mirror the service-level
// failure taxonomy one-to-one.
const (
	ErrorCodeInvalidCredentials    = "invalid_credentials"
	ErrorCodeForbidden             = "forbidden"
	ErrorCodePersonNotFound        = "person_not_found"
	ErrorCodeInvalidInput          = "invalid_input"
	ErrorCodeDuplicateRegistration = "duplicate_registration"
	ErrorCodeConflict              = "conflict"
	ErrorCodeUnavailable           = "unavailable"
	ErrorCodeServerError           = "server_error"
)

// APIError is a structured failure. The server writes it as a failure
// Envelope; the client reconstructs it from one.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code identifies the failure class
	Code string `json:"code"`

	// Message is the human-readable description surfaced verbatim in UIs
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError as a failure envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": e.Message,
	})
}

// Predefined API errors. Handlers return these directly; WithMessage
// derives a copy when a more specific message helps the caller.
var (
	// ErrInvalidCredentials deliberately does not distinguish unknown
	// username, wrong password, and deactivated account.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid username or password",
	}

	// ErrForbidden is returned on cross-city access.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "access to the requested city is not allowed",
	}

	// ErrPersonNotFound covers unknown, inactive, and out-of-city persons
	// alike: a person outside the caller's city is simply not visible.
	ErrPersonNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodePersonNotFound,
		Message:    "person not found in your city",
	}

	// ErrInvalidInput is returned for malformed times, dates, and shift types.
	ErrInvalidInput = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidInput,
		Message:    "invalid input",
	}

	// ErrDuplicateRegistration is returned when an attendance entry already
	// exists for the person on the given date.
	ErrDuplicateRegistration = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeDuplicateRegistration,
		Message:    "attendance already registered for this person today",
	}

	// ErrConflict is returned by provisioning when the record already exists.
	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "record already exists",
	}

	// ErrUnavailable signals a store failure; callers should retry with backoff.
	ErrUnavailable = &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       ErrorCodeUnavailable,
		Message:    "service temporarily unavailable",
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// WithMessage returns a copy of e carrying a more specific message.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{
		StatusCode: e.StatusCode,
		Code:       e.Code,
		Message:    msg,
	}
}
