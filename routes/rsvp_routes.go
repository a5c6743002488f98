package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"

	"github.com/gorilla/mux"
)

// RegisterRsvpRoutes registers the public RSVP endpoint under `/api/rsvp`
func RegisterRsvpRoutes(router *mux.Router, rsvpService *services.RsvpService) {
	controller := &controllers.RsvpController{RsvpService: rsvpService}

	router.HandleFunc("/api/rsvp", controller.SubmitRsvpHandler).Methods("POST")
}
