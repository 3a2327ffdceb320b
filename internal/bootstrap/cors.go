package bootstrap

import (
	"net/http"

	"rota-console/internal/middleware"

	"github.com/rs/cors"
)

// WithCORS lets the listed browser origins call the API with the session
// cookie. No origins means same-origin only and h is returned unchanged.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			middleware.HeaderRequestID,
			middleware.HeaderIdempotencyKey,
		},
		ExposedHeaders: []string{
			middleware.HeaderRequestID,
			middleware.HeaderIdempotentReplay,
			"Content-Disposition",
		},
		MaxAge: 600,
	}).Handler(h)
}
