package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mohsin1016/post-blog-test/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeDomainError maps a domain error to its status code. Anything outside
// the taxonomy is an upstream failure.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrDuplicateUsername),
		errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrForbidden):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidToken):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrPostNotFound), errors.Is(err, models.ErrUserNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
