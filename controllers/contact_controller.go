package controllers

import (
	"encoding/json"
	"net/http"

	"wedding_server/models"
	"wedding_server/services"
)

// ContactController handles contact-form submissions
type ContactController struct {
	ContactService *services.ContactService
}

func (c *ContactController) SubmitContactHandler(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.ContactService.SubmitContact(r.Context(), input); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Contact form submitted successfully!",
	})
}
