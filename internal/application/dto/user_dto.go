package dto

import "time"

// RegisterRequest entrada para registro (senha em texto, hasheada no use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
	Papel    string `json:"role" validate:"omitempty,oneof=admin gerente usuario"`
}

// LoginRequest entrada para login. Aceita form-encoded (compatível com o cliente OAuth2
// password flow) e JSON.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse saída de um usuário (sem hash de senha).
type UserResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
	Papel    string    `json:"role"`
	CriadoEm time.Time `json:"created_at"`
}

// LoginResponse saída do login com o bearer token.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"` // sempre "bearer"
	User        UserResponse `json:"user"`
}
