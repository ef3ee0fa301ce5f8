package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ShoppingList/internal/apperr"
)

// Recoverer превращает панику обработчика в ответ 500 INTERNAL_ERROR.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err := apperr.Wrap(apperr.CodeInternal, fmt.Errorf("panic: %v", rec), "internal error")
			sugar.Errorw("panic recovered",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()),
				"error", err,
			)
			status, body := apperr.BodyOf(err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
