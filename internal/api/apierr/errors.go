package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/schnapsen-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnknownVariant = "UNKNOWN_VARIANT"
	CodeNoLegalMoves   = "NO_LEGAL_MOVES"
	CodeInvalidState   = "INVALID_STATE"
	CodeMatchNotFound  = "MATCH_NOT_FOUND"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUnknownVariant):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownVariant, "Unknown strategy variant"}}
	case errors.Is(err, model.ErrNoLegalMoves):
		return &httpError{http.StatusBadRequest, APIError{CodeNoLegalMoves, "No legal moves supplied"}}
	case errors.Is(err, model.ErrCardAccounted):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidState, "State and legal moves are inconsistent"}}
	case errors.Is(err, model.ErrMatchRecordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match record not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
