package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pg-backend/internal/apperrors"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] response encode failed: %v", err)
	}
}

// Error maps a domain error to its HTTP status and writes a JSON body.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsConflict(err):
		status = http.StatusConflict
	case apperrors.IsStorage(err):
		// Keep storage details in the logs, not the response
		log.Printf("[HTTP] storage error: %v", err)
		msg = "storage failure"
	}

	JSON(w, status, errorBody{Error: msg})
}
