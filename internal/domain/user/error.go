package user

import "errors"

// Ошибки уровня хранилища. Сервис переводит их в apperror.
var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)
