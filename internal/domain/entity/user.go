package entity

import "time"

// Papéis de usuário.
const (
	PapelAdmin      = "admin"
	PapelEstoquista = "estoquista"
)

// Usuario é um operador do sistema, usado apenas pelo módulo de
// autenticação opcional.
type Usuario struct {
	ID        string // UUID
	Email     string
	SenhaHash string
	Nome      string
	Papel     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
