package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"todolist/internal/app/server/api/http/response"
)

// Pinger - хранилище, доступность которого проверяет health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	resp := Response{Status: "OK", Database: "OK"}
	status := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.log.Error("storage ping failed", "error", err)
			resp = Response{Status: "DEGRADED", Database: "UNAVAILABLE"}
			status = http.StatusServiceUnavailable
		}
	}

	return &Output{
		Status: status,
		Body: response.Envelope[Response]{
			Success: status == http.StatusOK,
			Status:  status,
			Data:    resp,
		},
	}, nil
}
