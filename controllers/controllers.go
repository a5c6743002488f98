package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wedding_server/services"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrEmailExists):
		respondError(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrGuestNotFound):
		respondError(w, http.StatusNotFound, "Guest not found")
	case errors.Is(err, services.ErrUserExists):
		respondError(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("❌ Server error: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error, try again later")
	}
}
