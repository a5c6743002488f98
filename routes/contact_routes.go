package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"

	"github.com/gorilla/mux"
)

// RegisterContactRoutes registers the public contact form under `/api/contact`
func RegisterContactRoutes(router *mux.Router, contactService *services.ContactService) {
	controller := &controllers.ContactController{ContactService: contactService}

	router.HandleFunc("/api/contact", controller.SubmitContactHandler).Methods("POST")
}
