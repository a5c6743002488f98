package controllers

import (
	"net/http"

	"wedding_server/services"
)

// AdminController serves the dashboard's read-only listings.
type AdminController struct {
	AuthService    *services.AuthService
	ContactService *services.ContactService
	HelpService    *services.HelpService
	RsvpService    *services.RsvpService
}

// GetUserHandler returns the username behind the presented token.
func (c *AdminController) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := services.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied, no token provided")
		return
	}

	user, err := c.AuthService.GetUser(r.Context(), claims)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"username": user.Username})
}

func (c *AdminController) GetContactsHandler(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.ContactService.ListContacts(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, contacts)
}

func (c *AdminController) GetHelpHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := c.HelpService.ListHelpEntries(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (c *AdminController) GetRsvpsHandler(w http.ResponseWriter, r *http.Request) {
	rsvps, err := c.RsvpService.ListRsvps(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rsvps)
}
