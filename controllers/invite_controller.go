package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"wedding_server/models"
	"wedding_server/services"

	"github.com/gorilla/mux"
)

// InviteController handles HTTP requests for the guest list
type InviteController struct {
	GuestService *services.GuestService
}

// GetGuestsHandler returns the reconciled guest list.
func (c *InviteController) GetGuestsHandler(w http.ResponseWriter, r *http.Request) {
	guests, err := c.GuestService.ListGuests(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, guests)
}

// CreateGuestHandler adds a guest to the invite list.
func (c *InviteController) CreateGuestHandler(w http.ResponseWriter, r *http.Request) {
	var input models.GuestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	guest, err := c.GuestService.CreateGuest(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Guest added successfully",
		"guest":   guest,
	})
}

// UpdateGuestHandler rewrites an existing guest.
func (c *InviteController) UpdateGuestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Guest not found")
		return
	}

	var input models.GuestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	guest, err := c.GuestService.UpdateGuest(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Guest updated successfully",
		"guest":   guest,
	})
}

// DeleteGuestHandler removes a guest and its RSVP record.
func (c *InviteController) DeleteGuestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Guest not found")
		return
	}

	if err := c.GuestService.DeleteGuest(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Guest deleted successfully",
	})
}
