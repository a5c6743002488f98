package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"wedding_server/models"
	"wedding_server/services"
)

// RsvpController handles standalone RSVP submissions
type RsvpController struct {
	RsvpService *services.RsvpService
}

func (c *RsvpController) SubmitRsvpHandler(w http.ResponseWriter, r *http.Request) {
	var input models.RsvpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := c.RsvpService.SubmitRsvp(r.Context(), input)
	if err != nil {
		if services.IsValidationError(err) {
			respondServiceError(w, err)
			return
		}
		log.Printf("❌ Error processing RSVP: %v", err)
		respondError(w, http.StatusInternalServerError, "We couldn't process your RSVP. Please try again shortly or contact us directly.")
		return
	}

	message := "RSVP updated successfully!"
	if created {
		message = "RSVP submitted successfully!"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}
