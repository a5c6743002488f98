package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"

	"github.com/gorilla/mux"
)

// RegisterHelpRoutes registers the public help form under `/api/help`
func RegisterHelpRoutes(router *mux.Router, helpService *services.HelpService) {
	controller := &controllers.HelpController{HelpService: helpService}

	router.HandleFunc("/api/help", controller.SubmitHelpHandler).Methods("POST")
}
