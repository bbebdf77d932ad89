// Package apierr maps application errors onto JSON API error responses.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkoehn/suchselgen/internal/model"
)

// Error codes returned in API responses
const (
	CodeInvalidRequest = "invalid_request"
	CodeInvalidConfig  = "invalid_configuration"
	CodePuzzleNotFound = "puzzle_not_found"
	CodeInternalError  = "internal_error"
)

// APIError carries a status code alongside a machine-readable code
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorResponse is the JSON envelope for errors
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// NewInvalidRequestError creates a 400 error for malformed requests
func NewInvalidRequestError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeInvalidRequest, Message: message}
}

// configurationErrors are rejected as 400s with a dedicated code
var configurationErrors = []error{
	model.ErrInvalidDimensions,
	model.ErrEmptyDistribution,
	model.ErrNonPositiveWeight,
	model.ErrUnknownProfile,
	model.ErrUnknownDirection,
	model.ErrUnknownMode,
	model.ErrEmptyWord,
}

// FromError maps an application error to an APIError
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, model.ErrPuzzleNotFound) {
		return &APIError{Status: http.StatusNotFound, Code: CodePuzzleNotFound, Message: err.Error()}
	}
	for _, cfgErr := range configurationErrors {
		if errors.Is(err, cfgErr) {
			return &APIError{Status: http.StatusBadRequest, Code: CodeInvalidConfig, Message: err.Error()}
		}
	}
	return &APIError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: "internal error"}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: apiErr})
}
