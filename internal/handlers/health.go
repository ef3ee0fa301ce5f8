package handlers

import (
	"errors"
	"net/http"

	"ShoppingList/internal/apperr"
	"ShoppingList/internal/repo"

	"go.uber.org/zap"
)

// HealthHandler: пробы живости и готовности.
type HealthHandler struct {
	DB     Pinger
	Logger *zap.SugaredLogger
}

func NewHealthHandler(db Pinger, logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{DB: db, Logger: logger}
}

// Health не трогает БД.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Shopping List API"})
}

// Ready пингует БД.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.Ping(r.Context()); err != nil {
		msg := "database unavailable"
		if errors.Is(err, repo.ErrDatabaseURLMissing) {
			msg = err.Error()
		}
		writeError(w, r, h.Logger, "Ready", apperr.Wrap(apperr.CodeUnavailable, err, msg))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
