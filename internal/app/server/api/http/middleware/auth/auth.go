package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"todolist/internal/app/server/api/http/response"
	"todolist/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const IdentityKey contextKey = "identity"

// схемы заголовка Authorization, которые принимает сервер
var schemes = []string{"bearer", "jwt"}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, ok := extractToken(ctx.Header("Authorization"))
		if !ok {
			a.log.Debug("missing or malformed Authorization header", "path", ctx.URL().Path)
			a.unauthorized(ctx, "Unauthorized")
			return
		}

		// Валидируем токен
		identity, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Debug("token validation failed", "error", err)
			a.unauthorized(ctx, "Unauthorized")
			return
		}

		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), identity)))
	}
}

func (a *Auth) unauthorized(ctx huma.Context, msg string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(http.StatusUnauthorized)

	err := json.NewEncoder(ctx.BodyWriter()).Encode(response.ErrorEnvelope{
		Status:  http.StatusUnauthorized,
		Message: msg,
	})
	if err != nil {
		a.log.Error("json encode", "error", err)
	}
}

// extractToken разбирает "Bearer <token>" и "JWT <token>", схема без учета регистра.
func extractToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	for _, s := range schemes {
		if strings.EqualFold(scheme, s) {
			return token, true
		}
	}
	return "", false
}

func WithIdentity(ctx context.Context, identity session.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentity(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(session.Identity)
	if !ok || identity.ID == "" {
		return session.Identity{}, false
	}
	return identity, true
}
