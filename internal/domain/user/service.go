package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"todolist/internal/domain/apperror"
)

// PasswordCost - стоимость bcrypt для хэшей паролей
const PasswordCost = 10

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register хэширует пароль и создает пользователя.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		s.log.Debug("validation failed", "username", req.Username, "error", err)
		if errors.Is(err, ErrPasswordMismatch) {
			return "", apperror.Validation(ErrPasswordMismatch.Error())
		}
		return "", apperror.Validation(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperror.Validation(err.Error())
		}
		return "", apperror.Storage("There was an error creating the user", fmt.Errorf("hash password: %w", err))
	}

	u := &User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return "", apperror.Conflict("User Name already taken")
		}
		s.log.Error("failed to create user", "username", req.Username, "error", err)
		return "", apperror.Storage("There was an error creating the user", err)
	}

	s.log.Info("user registered", "user_id", u.ID)

	return fmt.Sprintf("User %s successfully registered", req.Username), nil
}

// Authenticate проверяет пароль и возвращает пользователя без хэша.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, apperror.NotFound("Unable to find user " + username)
		}
		s.log.Error("failed to find user", "username", username, "error", err)
		return User{}, apperror.Storage("Unable to find user "+username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("password mismatch", "user_id", u.ID)
		return User{}, apperror.Auth("Incorrect password for user " + username)
	}

	u.PasswordHash = ""
	return u, nil
}
