package dto

import "time"

// RegisterRequest entrada para cadastrar um usuário.
type RegisterRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	Nome  string `json:"nome"`
	Papel string `json:"papel"`
}

// LoginRequest entrada para autenticação.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UsuarioResponse saída de um usuário (nunca expõe o hash da senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Papel     string    `json:"papel"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse token JWT + usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
