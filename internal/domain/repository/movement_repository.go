package repository

import (
	"context"
	"time"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// MovimentacaoFilter enumera os filtros opcionais das consultas ao ledger.
type MovimentacaoFilter struct {
	ProdutoID  *int64
	Tipo       *string // ENTRADA | SAIDA
	DataInicio *time.Time
	DataFim    *time.Time
	Limit      int // 0 = sem limite
}

// MovimentacaoRepository define o porto de persistência do ledger de
// movimentações. O ledger é append-only: não há Update nem Delete.
type MovimentacaoRepository interface {
	Create(ctx context.Context, movimentacao *entity.Movimentacao) error
	List(ctx context.Context, filtro MovimentacaoFilter) ([]*entity.Movimentacao, error)
	ListByProduto(ctx context.Context, produtoID int64, limit int) ([]*entity.Movimentacao, error)
	CountByProduto(ctx context.Context, produtoID int64) (int, error)
}
