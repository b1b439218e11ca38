package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode to a pooled buffer first so an encoding failure can still become a 500
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to its status and user-facing message
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgBodyTooLargeError   = "Request body too large"
	ErrMsgLineNotFoundError   = "Production line not found"
	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgInstanceNotFoundErr = "Recipe instance not found"
	ErrMsgInvalidClockError   = "Clock speed must be greater than 0 and at most 250"
	ErrMsgInvalidMachinesErr  = "Machine count must not be negative"
	ErrMsgInvalidLineNameErr  = "Line name must contain at least one letter or digit and be at most 100 characters"
	ErrMsgDuplicateSlugError  = "A production line with that slug already exists"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Internal details never reach the client; anything unrecognized is a 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrLineNotFound):
		return http.StatusNotFound, ErrMsgLineNotFoundError
	case errors.Is(err, domain.ErrInstanceNotFound):
		return http.StatusNotFound, ErrMsgInstanceNotFoundErr
	case errors.Is(err, domain.ErrRecipeNotFound):
		// the request referenced a recipe id the catalog does not know
		return http.StatusBadRequest, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrInvalidClockSpeed):
		return http.StatusBadRequest, ErrMsgInvalidClockError
	case errors.Is(err, domain.ErrInvalidMachineCount):
		return http.StatusBadRequest, ErrMsgInvalidMachinesErr
	case errors.Is(err, domain.ErrInvalidLineName):
		return http.StatusBadRequest, ErrMsgInvalidLineNameErr
	case errors.Is(err, domain.ErrDuplicateSlug):
		return http.StatusConflict, ErrMsgDuplicateSlugError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
