package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"todolist/internal/app/server/api/http/response"
	"todolist/internal/domain/session"
	"todolist/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*messageOutput, error) {
	msg, err := h.service.Register(ctx, user.RegisterRequest{
		Username:             input.Body.Username,
		Password:             input.Body.Password,
		PasswordConfirmation: input.Body.PasswordConfirmation,
	})
	if err != nil {
		return nil, response.Error(err)
	}

	return &messageOutput{Body: response.OK(msg)}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, response.Error(err)
	}

	token, err := h.session.Issue(ctx, session.Identity{ID: u.ID, Username: u.Username})
	if err != nil {
		h.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return nil, response.Error(err)
	}

	return &loginOutput{
		Body: response.OK(LoginResponse{
			Message: "login successful",
			Token:   token,
		}),
	}, nil
}
