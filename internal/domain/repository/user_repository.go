package repository

import (
	"context"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
}
