package handlers

import (
	"net/http"

	"ShoppingList/internal/service"

	"go.uber.org/zap"
)

// ItemHandler обрабатывает /api/items.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// List: все позиции, новые первыми, у каждой вложен магазин.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Logger, "ListItems", err)
		return
	}
	resp := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.ItemCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.Logger, "CreateItem", err)
		return
	}
	created, err := h.ItemService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, h.Logger, "CreateItem", err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(created))
}

// Update: частичное обновление, в том числе отметка is_checked и смена магазина.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.Logger, "UpdateItem", err)
		return
	}
	var req service.ItemUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.Logger, "UpdateItem", err)
		return
	}
	updated, err := h.ItemService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, h.Logger, "UpdateItem", err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.Logger, "DeleteItem", err)
		return
	}
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.Logger, "DeleteItem", err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Item deleted successfully"})
}
