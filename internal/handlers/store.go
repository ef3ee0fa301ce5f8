package handlers

import (
	"net/http"

	"ShoppingList/internal/service"

	"go.uber.org/zap"
)

// StoreHandler обрабатывает /api/stores.
type StoreHandler struct {
	StoreService *service.StoreService
	Logger       *zap.SugaredLogger
}

// NewStoreHandler создаёт хендлер магазинов
func NewStoreHandler(storeService *service.StoreService, logger *zap.SugaredLogger) *StoreHandler {
	return &StoreHandler{StoreService: storeService, Logger: logger}
}

func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.StoreService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Logger, "ListStores", err)
		return
	}
	resp := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		resp = append(resp, toStoreResponse(&stores[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create отвечает 200 с созданным магазином.
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.StoreCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.Logger, "CreateStore", err)
		return
	}
	created, err := h.StoreService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, h.Logger, "CreateStore", err)
		return
	}
	writeJSON(w, http.StatusOK, toStoreResponse(created))
}

func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.Logger, "UpdateStore", err)
		return
	}
	var req service.StoreUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.Logger, "UpdateStore", err)
		return
	}
	updated, err := h.StoreService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, h.Logger, "UpdateStore", err)
		return
	}
	writeJSON(w, http.StatusOK, toStoreResponse(updated))
}

// Delete удаляет магазин и, каскадом, его позиции.
func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.Logger, "DeleteStore", err)
		return
	}
	if err := h.StoreService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.Logger, "DeleteStore", err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Store deleted successfully"})
}
