package item

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"todolist/internal/app/server/api/http/middleware/auth"
	"todolist/internal/app/server/api/http/response"
	"todolist/internal/domain/item"
)

type Handler struct {
	service    item.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service item.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.completeOp(), h.complete)
	huma.Register(api, h.resetOp(), h.reset)
	huma.Register(api, h.removeOp(), h.remove)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.List(ctx, identity.ID)
	if err != nil {
		return nil, response.Error(err)
	}

	return &listOutput{Body: response.OK(items)}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*messageOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	msg, err := h.service.Add(ctx, identity.ID, item.Draft{
		Name:     input.Body.Name,
		Due:      input.Body.Due,
		Severity: input.Body.Severity,
	})
	if err != nil {
		return nil, response.Error(err)
	}

	return &messageOutput{Body: response.OK(msg)}, nil
}

func (h *Handler) complete(ctx context.Context, input *idInput) (*messageOutput, error) {
	return h.mutate(ctx, input.ID, h.service.Complete)
}

func (h *Handler) reset(ctx context.Context, input *idInput) (*messageOutput, error) {
	return h.mutate(ctx, input.ID, h.service.Reset)
}

func (h *Handler) remove(ctx context.Context, input *idInput) (*messageOutput, error) {
	return h.mutate(ctx, input.ID, h.service.Remove)
}

type mutation func(ctx context.Context, userID, itemID string) (string, error)

func (h *Handler) mutate(ctx context.Context, itemID string, fn mutation) (*messageOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	msg, err := fn(ctx, identity.ID, itemID)
	if err != nil {
		return nil, response.Error(err)
	}

	return &messageOutput{Body: response.OK(msg)}, nil
}
