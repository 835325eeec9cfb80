// Package apperror описывает типы отказов, которые доменные сервисы
// возвращают наружу. HTTP-слой выбирает код ответа по виду ошибки
// через errors.Is, не разбирая текст сообщения.
package apperror

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
	ErrAuth          = errors.New("authentication failed")
	ErrAuthorization = errors.New("not authorized")
	ErrStorage       = errors.New("storage error")
)

// DomainError несет вид отказа (Err), сообщение для клиента и исходную причину.
type DomainError struct {
	Err     error
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Err.Error() + ": " + e.Cause.Error()
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func Validation(msg string) error {
	return &DomainError{Err: ErrValidation, Message: msg}
}

func Conflict(msg string) error {
	return &DomainError{Err: ErrConflict, Message: msg}
}

func NotFound(msg string) error {
	return &DomainError{Err: ErrNotFound, Message: msg}
}

func Auth(msg string) error {
	return &DomainError{Err: ErrAuth, Message: msg}
}

func Authorization(msg string) error {
	return &DomainError{Err: ErrAuthorization, Message: msg}
}

// Storage оборачивает сбой хранилища. Причина доступна через errors.Is/As,
// но в сообщение для клиента не попадает.
func Storage(msg string, cause error) error {
	return &DomainError{Err: ErrStorage, Message: msg, Cause: cause}
}

// Kind возвращает вид отказа или nil, если err не доменная ошибка.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrAuth, ErrAuthorization, ErrStorage} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
