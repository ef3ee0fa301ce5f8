package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает любые источники, методы и заголовки, включая запросы с credentials.
// Источник отражается обратно, т.к. "*" вместе с credentials браузеры не принимают.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowOriginFunc:  func(_ *http.Request, _ string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
