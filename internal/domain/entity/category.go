package entity

import "time"

// Categoria agrupa produtos. A exclusão é bloqueada enquanto houver
// produtos referenciando a categoria.
type Categoria struct {
	ID        int64
	Nome      string
	Descricao string
	CreatedAt time.Time
	UpdatedAt time.Time
}
