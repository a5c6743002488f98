package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the wedding API.
type Config struct {
	Port      string
	AWSRegion string
	JWTSecret string

	// GuestsFile is the path of the JSON document holding the guest list.
	GuestsFile string

	EmailHost   string
	EmailPort   int
	EmailSecure bool
	EmailUser   string
	EmailPass   string
	// AdminEmail receives a copy of every form submission.
	AdminEmail string

	AllowedOrigins []string
}

// Load reads .env (if present) and builds the config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	emailPort, err := strconv.Atoi(getEnv("EMAIL_PORT", "587"))
	if err != nil {
		log.Printf("Invalid EMAIL_PORT, falling back to 587: %v", err)
		emailPort = 587
	}

	return &Config{
		Port:        getEnv("PORT", "5001"),
		AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		GuestsFile:  getEnv("GUESTS_FILE", "guests.json"),
		EmailHost:   os.Getenv("EMAIL_HOST"),
		EmailPort:   emailPort,
		EmailSecure: os.Getenv("EMAIL_SECURE") == "true",
		EmailUser:   os.Getenv("EMAIL_USER"),
		EmailPass:   os.Getenv("EMAIL_PASS"),
		AdminEmail:  getEnv("ADMIN_EMAIL", "info@lokowebdesign.com"),
		AllowedOrigins: splitList(getEnv(
			"ALLOWED_ORIGINS",
			"http://localhost:5173,https://localhost:5173",
		)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
