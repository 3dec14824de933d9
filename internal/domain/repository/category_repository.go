package repository

import (
	"context"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// CategoriaRepository define o porto de persistência para Categoria (DIP).
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entity.Categoria) error
	GetByID(ctx context.Context, id int64) (*entity.Categoria, error)
	List(ctx context.Context) ([]*entity.Categoria, error)
	Update(ctx context.Context, categoria *entity.Categoria) error
	Delete(ctx context.Context, id int64) error
}
