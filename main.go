package main

import (
	"encoding/json"
	"log"
	"net/http"

	"wedding_server/config"
	"wedding_server/routes"
	"wedding_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	log.Println("🚀 Wedding API starting...")
	cfg := config.Load()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Stores
	rsvpStore := &services.DynamoRsvpStore{Dynamo: dynamoService}
	guestStore := &services.FileGuestStore{Path: cfg.GuestsFile}
	userStore := &services.DynamoUserStore{Dynamo: dynamoService}

	// Initialize Services
	emailService := services.NewEmailService(cfg)
	syncService := &services.SyncService{Rsvps: rsvpStore, Guests: guestStore}
	guestService := &services.GuestService{
		Rsvps:    rsvpStore,
		Guests:   guestStore,
		Sync:     syncService,
		Notifier: emailService,
	}
	rsvpService := &services.RsvpService{
		Rsvps:    rsvpStore,
		Sync:     syncService,
		Notifier: emailService,
	}
	contactService := &services.ContactService{Dynamo: dynamoService, Notifier: emailService}
	helpService := &services.HelpService{Dynamo: dynamoService, Notifier: emailService}
	authService := &services.AuthService{Users: userStore, JWTSecret: cfg.JWTSecret}

	// Initialize the router
	r := mux.NewRouter()

	// Register a health check endpoint
	r.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "OK", "message": "Server is running"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterAdminRoutes(r, authService, contactService, helpService, rsvpService)
	routes.RegisterInviteRoutes(r, guestService, authService)
	routes.RegisterRsvpRoutes(r, rsvpService)
	routes.RegisterContactRoutes(r, contactService)
	routes.RegisterHelpRoutes(r, helpService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("🚀 Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
