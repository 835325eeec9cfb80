package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"

	"todolist/internal/app/client/config"
	"todolist/internal/domain/item"
)

// ErrNotAuthenticated - токен не сохранен, нужен вход
var ErrNotAuthenticated = errors.New("токен не найден. Выполните вход: todo auth login")

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		config:     cfg,
		log:        log,
		httpClient: NewHTTPClient(cfg, log),
	}
}

type appKey struct{}

// WithApp кладет приложение в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// FromContext достает приложение, положенное WithApp
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// Register регистрирует нового пользователя
func (a *App) Register(ctx context.Context, username, password, confirmation string) (string, error) {
	msg, err := a.httpClient.Register(ctx, username, password, confirmation)
	if err != nil {
		return "", err
	}

	a.log.Info("Пользователь успешно зарегистрирован", "login", username)
	return msg, nil
}

// Login выполняет вход и сохраняет токен
func (a *App) Login(ctx context.Context, username, password string) error {
	token, err := a.httpClient.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.SaveToken(token); err != nil {
		return err
	}

	a.log.Info("Вход выполнен успешно", "login", username)
	return nil
}

// Logout удаляет сохраненный токен
func (a *App) Logout() error {
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	a.httpClient.SetToken("")
	return nil
}

// GetToken возвращает сохраненный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// SaveToken сохраняет токен аутентификации
func (a *App) SaveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(a.config.TokenPath), 0700); err != nil {
		return fmt.Errorf("ошибка создания директории: %w", err)
	}
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.httpClient.SetToken(token)
	return nil
}

func (a *App) authorize() error {
	token, err := a.GetToken()
	if err != nil {
		return err
	}
	a.httpClient.SetToken(token)
	return nil
}

func (a *App) ListItems(ctx context.Context) ([]item.Item, error) {
	if err := a.authorize(); err != nil {
		return nil, err
	}
	return a.httpClient.ListItems(ctx)
}

func (a *App) AddItem(ctx context.Context, name, due string, severity int) (string, error) {
	if err := a.authorize(); err != nil {
		return "", err
	}
	return a.httpClient.AddItem(ctx, name, due, severity)
}

func (a *App) CompleteItem(ctx context.Context, id string) (string, error) {
	if err := a.authorize(); err != nil {
		return "", err
	}
	return a.httpClient.CompleteItem(ctx, id)
}

func (a *App) ResetItem(ctx context.Context, id string) (string, error) {
	if err := a.authorize(); err != nil {
		return "", err
	}
	return a.httpClient.ResetItem(ctx, id)
}

func (a *App) RemoveItem(ctx context.Context, id string) (string, error) {
	if err := a.authorize(); err != nil {
		return "", err
	}
	return a.httpClient.RemoveItem(ctx, id)
}
