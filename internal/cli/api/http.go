package api

import (
	"ItemKeeper/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	itemsPath      = "/api/items"
	defaultTimeout = 15 * time.Second
)

// Error — ответ сервера с кодом не 2xx.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
}

// Client — HTTP-клиент к API items.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient создаёт клиента для сервера по адресу baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: defaultTimeout},
	}
}

// ListItems — GET /api/items
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, itemsPath, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem — POST /api/items
func (c *Client) CreateItem(ctx context.Context, patch model.ItemPatch) (*model.Item, error) {
	var it model.Item
	if err := c.do(ctx, http.MethodPost, itemsPath, patch.Updates(), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// GetItem — GET /api/items/{id}
func (c *Client) GetItem(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	if err := c.do(ctx, http.MethodGet, itemPath(id), nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateItem — PUT /api/items/{id}, передаются только заданные поля patch.
func (c *Client) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	var it model.Item
	if err := c.do(ctx, http.MethodPut, itemPath(id), patch.Updates(), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// DeleteItem — DELETE /api/items/{id}. Возвращает сообщение сервера.
func (c *Client) DeleteItem(ctx context.Context, id string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, itemPath(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func itemPath(id string) string {
	return itemsPath + "/" + url.PathEscape(id)
}

// do отправляет JSON-запрос и декодирует ответ в out. Не-2xx превращается в *Error.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// errorMessage достаёт текст ошибки из {"error":...} или {"url":"... not found"}.
func errorMessage(raw []byte) string {
	var e struct {
		Error string `json:"error"`
		URL   string `json:"url"`
	}
	if json.Unmarshal(raw, &e) == nil {
		switch {
		case e.Error != "":
			return e.Error
		case e.URL != "":
			return e.URL
		}
	}
	return strings.TrimSpace(string(raw))
}
