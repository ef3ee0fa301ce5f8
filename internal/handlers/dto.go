package handlers

import (
	"time"

	"ShoppingList/internal/model"
)

// StoreResponse: магазин в ответах API.
type StoreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemResponse: позиция списка вместе с её магазином.
type ItemResponse struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Quantity   string         `json:"quantity"`
	StoreID    int64          `json:"store_id"`
	NeedByDate *model.Date    `json:"need_by_date"`
	IsChecked  bool           `json:"is_checked"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Store      *StoreResponse `json:"store"`
}

func toStoreResponse(s *model.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Color:     s.Color,
		Icon:      s.Icon,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toItemResponse(it *model.ShoppingItem) ItemResponse {
	resp := ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		StoreID:    it.StoreID,
		NeedByDate: it.NeedByDate,
		IsChecked:  it.IsChecked,
		CreatedAt:  it.CreatedAt.UTC(),
		UpdatedAt:  it.UpdatedAt.UTC(),
	}
	if it.Store != nil {
		store := toStoreResponse(it.Store)
		resp.Store = &store
	}
	return resp
}
