package api

import "time"

type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Item struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Quantity   string    `json:"quantity"`
	StoreID    int64     `json:"store_id"`
	NeedByDate *string   `json:"need_by_date"`
	IsChecked  bool      `json:"is_checked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Store      *Store    `json:"store"`
}

// StoreCreate: пустые color/icon не отправляются, сервер подставит значения по умолчанию.
type StoreCreate struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type ItemCreate struct {
	Name       string `json:"name"`
	Quantity   string `json:"quantity,omitempty"`
	StoreID    int64  `json:"store_id"`
	NeedByDate string `json:"need_by_date,omitempty"`
}

// Fields: тело PATCH: только передаваемые поля; nil в значении отправляется как null.
type Fields map[string]any

type message struct {
	Message string `json:"message"`
}
