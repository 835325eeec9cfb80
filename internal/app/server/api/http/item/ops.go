package item

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-list",
		Method:      http.MethodGet,
		Path:        "/api/items",
		Summary:     "Список дел пользователя",
		Tags:        []string{"items"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-add",
		Method:      http.MethodPut,
		Path:        "/api/items",
		Summary:     "Добавить дело",
		Tags:        []string{"items"},
		Security:    bearer,
		Errors:      []int{http.StatusUnprocessableEntity},
		Middlewares: h.middleware,
	}
}

func (h *Handler) completeOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-complete",
		Method:      http.MethodPut,
		Path:        "/api/items/complete/{id}",
		Summary:     "Отметить дело выполненным",
		Tags:        []string{"items"},
		Security:    bearer,
		Errors:      []int{http.StatusForbidden, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) resetOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-reset",
		Method:      http.MethodPut,
		Path:        "/api/items/reset/{id}",
		Summary:     "Снять отметку о выполнении",
		Tags:        []string{"items"},
		Security:    bearer,
		Errors:      []int{http.StatusForbidden, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) removeOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-remove",
		Method:      http.MethodDelete,
		Path:        "/api/items/{id}",
		Summary:     "Удалить дело",
		Tags:        []string{"items"},
		Security:    bearer,
		Errors:      []int{http.StatusForbidden, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}
