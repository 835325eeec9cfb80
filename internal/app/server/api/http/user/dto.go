package user

import "todolist/internal/app/server/api/http/response"

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	_                    struct{} `json:"-" additionalProperties:"true"`
	Username             string `json:"userName" example:"alice" doc:"Имя пользователя"`
	Password             string `json:"password" example:"pw1"`
	PasswordConfirmation string `json:"password2" example:"pw1" doc:"Повтор пароля"`
}

type messageOutput struct {
	Body response.Envelope[string]
}

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Username string `json:"userName" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

type loginOutput struct {
	Body response.Envelope[LoginResponse]
}

type LoginResponse struct {
	Message string `json:"message" example:"login successful"`
	Token   string `json:"token" doc:"JWT для заголовка Authorization"`
}
