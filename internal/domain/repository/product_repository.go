package repository

import (
	"context"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// ProdutoFilter enumera os filtros opcionais da listagem de produtos.
// Substitui a montagem incremental de um objeto de consulta genérico:
// o repositório recebe o critério completo de uma vez.
type ProdutoFilter struct {
	CategoriaID  *int64
	EstoqueBaixo bool   // quantidade < estoque_minimo (avaliado no SQL)
	Busca        string // casamento por nome/código, sem acentos
}

// ProdutoRepository define o porto de persistência para Produto (DIP).
// QuantidadeForUpdate e SetQuantidade existem para o motor de
// movimentações e só fazem sentido dentro de uma transação.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	GetByID(ctx context.Context, id int64) (*entity.Produto, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Produto, error)
	List(ctx context.Context, filtro ProdutoFilter) ([]*entity.Produto, error)
	ListEstoqueBaixo(ctx context.Context) ([]*entity.Produto, error)
	CountByCategoria(ctx context.Context, categoriaID int64) (int, error)
	Update(ctx context.Context, produto *entity.Produto) error
	Delete(ctx context.Context, id int64) error

	// QuantidadeForUpdate lê o saldo corrente bloqueando a linha do
	// produto (SELECT ... FOR UPDATE) até o fim da transação.
	QuantidadeForUpdate(ctx context.Context, id int64) (int, error)
	SetQuantidade(ctx context.Context, id int64, quantidade int) error
}
