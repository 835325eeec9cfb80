package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-register",
		Method:      http.MethodPost,
		Path:        "/api/user/register",
		Summary:     "Регистрация пользователя",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusConflict, http.StatusUnprocessableEntity},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/api/user/login",
		Summary:     "Авторизация пользователя",
		Description: "Возвращает JWT, который передается в заголовке Authorization со схемой Bearer или JWT.",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}
