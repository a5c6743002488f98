package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"

	"github.com/gorilla/mux"
)

// RegisterInviteRoutes registers the guest-list CRUD under `/api/invites`.
// All of it is behind the admin token.
func RegisterInviteRoutes(router *mux.Router, guestService *services.GuestService, authService *services.AuthService) {
	controller := &controllers.InviteController{GuestService: guestService}

	inviteRouter := router.PathPrefix("/api/invites").Subrouter()
	inviteRouter.Use(AuthenticateToken(authService))
	inviteRouter.HandleFunc("", controller.GetGuestsHandler).Methods("GET")
	inviteRouter.HandleFunc("", controller.CreateGuestHandler).Methods("POST")
	inviteRouter.HandleFunc("/{id}", controller.UpdateGuestHandler).Methods("PUT")
	inviteRouter.HandleFunc("/{id}", controller.DeleteGuestHandler).Methods("DELETE")
}
