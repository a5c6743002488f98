package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes registers the dashboard listings under `/api/admin`.
// All of it is behind the admin token.
func RegisterAdminRoutes(
	router *mux.Router,
	authService *services.AuthService,
	contactService *services.ContactService,
	helpService *services.HelpService,
	rsvpService *services.RsvpService,
) {
	controller := &controllers.AdminController{
		AuthService:    authService,
		ContactService: contactService,
		HelpService:    helpService,
		RsvpService:    rsvpService,
	}

	adminRouter := router.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(AuthenticateToken(authService))
	adminRouter.HandleFunc("/user", controller.GetUserHandler).Methods("GET")
	adminRouter.HandleFunc("/contacts", controller.GetContactsHandler).Methods("GET")
	adminRouter.HandleFunc("/help", controller.GetHelpHandler).Methods("GET")
	adminRouter.HandleFunc("/rsvps", controller.GetRsvpsHandler).Methods("GET")
}
