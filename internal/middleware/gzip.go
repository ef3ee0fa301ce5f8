package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

var compress = chimw.Compress(5, "application/json", "text/plain")

// WithGzip сжимает JSON-ответы, если клиент прислал Accept-Encoding: gzip.
func WithGzip(next http.Handler) http.Handler {
	return compress(next)
}
