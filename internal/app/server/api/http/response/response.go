// Package response описывает единый конверт ответов API:
// {"success": bool, "status": int, "data" | "error": ...}.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"todolist/internal/domain/apperror"
)

// Envelope - успешный ответ.
type Envelope[T any] struct {
	Success bool `json:"success" example:"true"`
	Status  int  `json:"status" example:"200"`
	Data    T    `json:"data"`
}

// OK заворачивает данные в успешный конверт со статусом 200.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Status: http.StatusOK, Data: data}
}

// ErrorEnvelope - ответ с ошибкой. Реализует huma.StatusError, поэтому
// его можно вернуть из обработчика как error.
type ErrorEnvelope struct {
	Success bool   `json:"success" example:"false"`
	Status  int    `json:"status" example:"422"`
	Message string `json:"error" example:"Passwords do not match"`
}

func (e *ErrorEnvelope) Error() string {
	return e.Message
}

func (e *ErrorEnvelope) GetStatus() int {
	return e.Status
}

func (e *ErrorEnvelope) ContentType(string) string {
	return "application/json"
}

// NewError подходит для подмены huma.NewError: ошибки валидации и
// роутинга huma отдаются в том же конверте.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}
	return &ErrorEnvelope{Status: status, Message: msg}
}

// Write пишет конверт с ошибкой напрямую в http.ResponseWriter. Нужен
// там, где huma не участвует: неизвестный путь, неподходящий метод.
func Write(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&ErrorEnvelope{Status: status, Message: msg})
}

// Error переводит доменную ошибку в конверт. Код выбирается по виду
// ошибки, неизвестные ошибки считаются внутренними.
func Error(err error) *ErrorEnvelope {
	status := StatusFor(err)
	msg := err.Error()
	var domainErr *apperror.DomainError
	if status == http.StatusInternalServerError && !errors.As(err, &domainErr) {
		msg = http.StatusText(http.StatusInternalServerError)
	}
	return &ErrorEnvelope{Status: status, Message: msg}
}

func StatusFor(err error) int {
	switch apperror.Kind(err) {
	case apperror.ErrValidation:
		return http.StatusUnprocessableEntity
	case apperror.ErrConflict:
		return http.StatusConflict
	case apperror.ErrNotFound:
		return http.StatusNotFound
	case apperror.ErrAuth:
		return http.StatusUnauthorized
	case apperror.ErrAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
