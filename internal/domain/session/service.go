package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"

	"todolist/internal/domain/apperror"
)

const issuer = "todolist"

// Identity - пользователь, от имени которого выполняется запрос
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"userName"`
}

// Claims - полезная нагрузка токена
type Claims struct {
	UserID   string `json:"_id"`
	Username string `json:"userName"`
	jwt.RegisteredClaims
}

type Servicer interface {
	Issue(ctx context.Context, id Identity) (string, error)
	Validate(ctx context.Context, token string) (Identity, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewService(secret string, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log.With("component", "session_service"),
	}
}

// Issue подписывает HS256-токен для пользователя
func (s *Service) Issue(_ context.Context, id Identity) (string, error) {
	if id.ID == "" {
		return "", apperror.Validation("Require a User id to issue a token.")
	}

	now := s.now()
	claims := Claims{
		UserID:   id.ID,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// Validate проверяет подпись, алгоритм и срок действия токена
func (s *Service) Validate(_ context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, apperror.Auth("token required")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		s.log.Debug("token rejected", "error", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperror.Auth("token expired")
		}
		return Identity{}, apperror.Auth("invalid token")
	}

	if !parsed.Valid || claims.UserID == "" {
		return Identity{}, apperror.Auth("invalid token")
	}

	return Identity{ID: claims.UserID, Username: claims.Username}, nil
}
