package item

import (
	"todolist/internal/app/server/api/http/response"
	"todolist/internal/domain/item"
)

type listOutput struct {
	Body response.Envelope[[]item.Item]
}

type addInput struct {
	Body addRequest
}

// лишние поля (например, чужой user) молча отбрасываются
type addRequest struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Name     string `json:"name" example:"buy milk" doc:"Название дела"`
	Due      string `json:"due" example:"2024-01-01" doc:"Срок: YYYY-MM-DD или RFC 3339"`
	Severity int    `json:"severity,omitempty" example:"1" doc:"Важность"`
}

type idInput struct {
	ID string `path:"id" example:"0b7f6c1e-3d2a-4c55-9a57-3c1f0e2b9d10" doc:"ID дела"`
}

type messageOutput struct {
	Body response.Envelope[string]
}
