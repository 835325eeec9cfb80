package user

import (
	"context"
)

type Repository interface {
	// Create сохраняет пользователя и заполняет ID и CreatedAt.
	// Повтор имени возвращает ErrUsernameTaken.
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (User, error)
}
