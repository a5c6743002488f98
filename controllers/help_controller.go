package controllers

import (
	"encoding/json"
	"net/http"

	"wedding_server/models"
	"wedding_server/services"
)

// HelpController handles help-form submissions
type HelpController struct {
	HelpService *services.HelpService
}

func (c *HelpController) SubmitHelpHandler(w http.ResponseWriter, r *http.Request) {
	var input models.HelpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.HelpService.SubmitHelp(r.Context(), input); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Help form submitted successfully!",
	})
}
