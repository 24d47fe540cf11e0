package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// DefaultCORS returns the CORS middleware for the browser app. An empty
// frontendURL falls back to allowing any origin, which suits local dev.
func DefaultCORS(frontendURL string) func(http.Handler) http.Handler {
	origins := []string{"https://*", "http://*"}
	if frontendURL != "" {
		origins = []string{frontendURL}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
