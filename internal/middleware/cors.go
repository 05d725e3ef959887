package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// WithCORS разрешает кросс-доменные запросы с любых источников.
func WithCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	})
}
