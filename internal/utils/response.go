// Package utils provides shared helpers: the error taxonomy, JSON request
// decoding and validation, response writers, and logger setup.
//
// Response conventions: success responses serialize the entity (or DTO)
// directly; error responses are a JSON object with a single human-readable
// "error" field, plus an optional "details" map when several fields failed
// validation at once.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/constants"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		if _, werr := w.Write([]byte(`{"error":"Failed to generate response"}`)); werr != nil {
			log.Error().Err(werr).Msg("Failed to write error response")
		}
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// Error writes an error response with the given status code and message.
func Error(w http.ResponseWriter, statusCode int, message string, details map[string]string) {
	JSON(w, statusCode, ErrorBody{Error: message, Details: details})
}

// ErrorFromAppError writes an error response derived from an AppError.
// Internal faults log their DevInfo and expose only the generic message.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	if err.StatusCode >= http.StatusInternalServerError {
		log.Error().
			Str("dev_info", err.DevInfo).
			Err(err.Err).
			Msg("Internal error surfaced to client")
	}
	Error(w, err.StatusCode, err.Message, err.Details)
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	Error(w, http.StatusBadRequest, message, details)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message, nil)
}

// AccessDenied writes the 422 response used by the session gate.
func AccessDenied(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgAccessDenied
	}
	Error(w, http.StatusUnprocessableEntity, message, nil)
}

// InternalServerError logs the cause and writes a generic 500 response.
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	Error(w, http.StatusInternalServerError, constants.MsgInternalError, nil)
}
