package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows any origin. The server exposes game state only, nothing
// here is credential-sensitive.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
