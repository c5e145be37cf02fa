// Package apierr maps domain errors to HTTP responses. Errors go out
// as a single string under an "error" key.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with a message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidStep), errors.Is(err, model.ErrUnknownEvent):
		return &httpError{http.StatusBadRequest, err.Error()}

	// Directory and storage failures are opaque request failures:
	// all-or-nothing, the affected counter is unchanged
	default:
		return &httpError{http.StatusInternalServerError, err.Error()}
	}
}

// NewValidationError creates a 400 input-validation error
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates a 401 error for the admin gate
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "admin password required"}
}

// NewInternalError creates an opaque 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "internal server error"}
}
