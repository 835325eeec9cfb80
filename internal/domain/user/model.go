package user

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"userName"`
	PasswordHash string    `json:"-"` // хэш bcrypt
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest - данные формы регистрации
type RegisterRequest struct {
	Username             string
	Password             string
	PasswordConfirmation string
}
