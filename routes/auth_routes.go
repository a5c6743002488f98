package routes

import (
	"wedding_server/controllers"
	"wedding_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes registers registration and login under `/api/auth`
func RegisterAuthRoutes(router *mux.Router, authService *services.AuthService) {
	controller := &controllers.AuthController{AuthService: authService}

	authRouter := router.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", controller.RegisterHandler).Methods("POST")
	authRouter.HandleFunc("/login", controller.LoginHandler).Methods("POST")
}
