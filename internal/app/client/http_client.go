package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/exp/slog"

	"todolist/internal/app/client/config"
	"todolist/internal/domain/item"
)

// envelope - общий формат ответов сервера
type envelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// ServerError - ответ сервера с ошибкой
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, e.Message)
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	return &httpClient{
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "Todo-Client/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (h *httpClient) Register(ctx context.Context, username, password, confirmation string) (string, error) {
	req := map[string]string{
		"userName":  username,
		"password":  password,
		"password2": confirmation,
	}

	var msg string
	if err := h.call(ctx, http.MethodPost, "/api/user/register", req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (h *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	req := map[string]string{
		"userName": username,
		"password": password,
	}

	var loginResp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := h.call(ctx, http.MethodPost, "/api/user/login", req, &loginResp); err != nil {
		return "", err
	}
	if loginResp.Token == "" {
		return "", fmt.Errorf("сервер не вернул токен")
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *httpClient) ListItems(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	if err := h.call(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpClient) AddItem(ctx context.Context, name, due string, severity int) (string, error) {
	req := struct {
		Name     string `json:"name"`
		Due      string `json:"due"`
		Severity int    `json:"severity"`
	}{name, due, severity}

	var msg string
	err := h.call(ctx, http.MethodPut, "/api/items", req, &msg)
	return msg, err
}

func (h *httpClient) CompleteItem(ctx context.Context, id string) (string, error) {
	var msg string
	err := h.call(ctx, http.MethodPut, "/api/items/complete/"+url.PathEscape(id), nil, &msg)
	return msg, err
}

func (h *httpClient) ResetItem(ctx context.Context, id string) (string, error) {
	var msg string
	err := h.call(ctx, http.MethodPut, "/api/items/reset/"+url.PathEscape(id), nil, &msg)
	return msg, err
}

func (h *httpClient) RemoveItem(ctx context.Context, id string) (string, error) {
	var msg string
	err := h.call(ctx, http.MethodDelete, "/api/items/"+url.PathEscape(id), nil, &msg)
	return msg, err
}

func (h *httpClient) call(ctx context.Context, method, path string, body, result interface{}) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode)

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &ServerError{Status: resp.StatusCode}
		}
		return fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &ServerError{Status: resp.StatusCode, Message: env.Error}
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
