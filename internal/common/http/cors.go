package http

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware allows cross-origin calls from allowedOrigins ("*" for any)
// and answers preflight requests without reaching the router.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader, errorCodeHeader},
	})
	return c.Handler
}
