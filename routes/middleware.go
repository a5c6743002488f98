package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"wedding_server/services"

	"github.com/gorilla/mux"
)

// AuthenticateToken guards a subrouter with bearer-token auth. A missing
// or malformed header is 401; a token that fails verification is 403.
func AuthenticateToken(authService *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || parts[1] == "" {
				writeAuthError(w, http.StatusUnauthorized, "Access denied, no token provided")
				return
			}

			claims, err := authService.VerifyToken(parts[1])
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(services.ContextWithClaims(r.Context(), claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
