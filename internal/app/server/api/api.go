// GET    /api/health                # Проверка состояния (публичный)
// POST   /api/user/register         # Регистрация (публичный)
// POST   /api/user/login            # Логин (публичный)
// GET    /api/items                 # Список дел (auth)
// PUT    /api/items                 # Добавить дело (auth)
// PUT    /api/items/complete/{id}   # Отметить выполненным (auth)
// PUT    /api/items/reset/{id}      # Снять отметку (auth)
// DELETE /api/items/{id}            # Удалить дело (auth)

package api

import (
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	healthAPI "todolist/internal/app/server/api/http/health"
	itemAPI "todolist/internal/app/server/api/http/item"
	"todolist/internal/app/server/api/http/middleware"
	"todolist/internal/app/server/api/http/middleware/auth"
	"todolist/internal/app/server/api/http/middleware/logger"
	"todolist/internal/app/server/api/http/response"
	userAPI "todolist/internal/app/server/api/http/user"
	"todolist/internal/domain/item"
	"todolist/internal/domain/session"
	"todolist/internal/domain/user"
)

// Deps - зависимости роутера, которые собирает main.
type Deps struct {
	DB      healthAPI.Pinger
	Users   user.Repository
	Items   item.Repository
	Session session.Servicer
}

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Item   *itemAPI.Handler
}

var envelopeErrors sync.Once

// UseEnvelopeErrors подменяет huma.NewError один раз на процесс: ошибки
// huma (валидация, 404 и т.п.) отдаются в том же конверте.
func UseEnvelopeErrors() {
	envelopeErrors.Do(func() {
		huma.NewError = response.NewError
	})
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(deps Deps, log *slog.Logger) *chi.Mux {
	UseEnvelopeErrors()

	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	// chi отвечает сам, до huma: неизвестный путь и чужой метод
	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Write(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Write(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	config := huma.DefaultConfig("Todo List API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h := handlers(deps, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Item.SetupRoutes(API)

	return mux
}

func handlers(deps Deps, log *slog.Logger) *Handlers {
	authMW := auth.New(deps.Session, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(deps.DB, log, middlewares.GetAllAndClear())

	userService := user.NewService(deps.Users, user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, deps.Session, log, middlewares.GetAllAndClear())

	itemService := item.NewService(deps.Items, log)
	// логгер снаружи, чтобы в журнал попадали и отказы авторизации
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	itemHandler := itemAPI.NewHandler(itemService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Item:   itemHandler,
	}
}
