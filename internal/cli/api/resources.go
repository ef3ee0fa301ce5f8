package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	var out []Store
	err := c.call(ctx, http.MethodGet, "/api/stores", nil, &out)
	return out, err
}

func (c *Client) CreateStore(ctx context.Context, in StoreCreate) (*Store, error) {
	var out Store
	if err := c.call(ctx, http.MethodPost, "/api/stores", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStore(ctx context.Context, id int64, fields Fields) (*Store, error) {
	var out Store
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/api/stores/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStore удаляет магазин; сервер удаляет и все его позиции.
func (c *Client) DeleteStore(ctx context.Context, id int64) (string, error) {
	var out message
	err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/stores/%d", id), nil, &out)
	return out.Message, err
}

func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var out []Item
	err := c.call(ctx, http.MethodGet, "/api/items", nil, &out)
	return out, err
}

func (c *Client) CreateItem(ctx context.Context, in ItemCreate) (*Item, error) {
	var out Item
	if err := c.call(ctx, http.MethodPost, "/api/items", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateItem(ctx context.Context, id int64, fields Fields) (*Item, error) {
	var out Item
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/api/items/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int64) (string, error) {
	var out message
	err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, &out)
	return out.Message, err
}

// Health возвращает статус из /api/health.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	err := c.call(ctx, http.MethodGet, "/api/health", nil, &out)
	return out.Status, err
}
