package user

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	MaxUsernameLen = 64
	// bcrypt не принимает пароли длиннее 72 байт
	MaxPasswordLen = 72
)

var ErrPasswordMismatch = errors.New("Passwords do not match")

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(req RegisterRequest) error
	ValidateUsername(username string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct{}

// NewCredentialsValidator создает новый валидатор
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// ValidateRegister валидирует данные для регистрации
func (v *CredentialsValidator) ValidateRegister(req RegisterRequest) error {
	if req.Password != req.PasswordConfirmation {
		return ErrPasswordMismatch
	}

	if err := v.ValidateUsername(req.Username); err != nil {
		return fmt.Errorf("username validation failed: %w", err)
	}

	if err := v.ValidatePassword(req.Password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateUsername валидирует имя пользователя
func (v *CredentialsValidator) ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username is required")
	}

	if utf8.RuneCountInString(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' && r != '@' {
			return errors.New("username can only contain letters, digits, '_', '-', '.', '@'")
		}
	}

	return nil
}

// ValidatePassword валидирует пароль
func (v *CredentialsValidator) ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	return nil
}
