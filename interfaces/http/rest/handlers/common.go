// Package handlers contains the REST request handlers.
package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "unicorn-properties/pkg/errors"
)

// ErrorResponse is the standard error body of the REST surface.
type ErrorResponse struct {
	Message        string `json:"message"`
	RequestDetails string `json:"requestDetails,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), ErrorResponse{
		Message:        "ErrorInRequest",
		RequestDetails: err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
