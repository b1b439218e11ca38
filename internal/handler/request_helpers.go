package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FactoryPlanner_Go/internal/logger"
)

// Path parameter names
const (
	ParamSlug     = "slug"
	ParamIndex    = "index"
	ParamRecipeID = "id"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// writes the error response when either step fails. If it returns an error
// the handler should return without writing anything else.
//
//	var req CreateLineRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create line"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := decodeJSONBody(r, w, req, actionName); err != nil {
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgRequestRejected, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// decodeJSONBody decodes a JSON body, rejecting unknown fields, and writes
// the 400 or 413 response on failure.
func decodeJSONBody(r *http.Request, w http.ResponseWriter, v interface{}, actionName string) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeRequestFailed, "action", actionName, "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLargeError)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// pathIndex parses the {index} path parameter. On failure the 400 response
// has already been written.
func pathIndex(r *http.Request, w http.ResponseWriter) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, ParamIndex))
	if err != nil || index < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIndex)
		return 0, false
	}
	return index, true
}

// boolQueryParam reads an optional boolean query parameter. On failure the
// 400 response has already been written.
func boolQueryParam(r *http.Request, w http.ResponseWriter, name string) (bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidBoolParam, name))
		return false, false
	}
	return v, true
}
