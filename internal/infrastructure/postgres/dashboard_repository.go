package postgres

import (
	"context"
	"fmt"

	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para o painel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository constrói o adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountProdutos total de produtos cadastrados.
func (r *DashboardRepo) CountProdutos(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM produtos`)
	if err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return n, nil
}

// CountCategorias total de categorias cadastradas.
func (r *DashboardRepo) CountCategorias(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM categorias`)
	if err != nil {
		return 0, fmt.Errorf("count categorias: %w", err)
	}
	return n, nil
}

// SumEstoque soma das quantidades de todos os produtos.
func (r *DashboardRepo) SumEstoque(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COALESCE(SUM(quantidade), 0) FROM produtos`)
	if err != nil {
		return 0, fmt.Errorf("sum estoque: %w", err)
	}
	return n, nil
}

// CountEstoqueBaixo total de produtos com quantidade abaixo do estoque
// mínimo. Mesma comparação usada pelo relatório de estoque baixo.
func (r *DashboardRepo) CountEstoqueBaixo(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM produtos WHERE quantidade < estoque_minimo`)
	if err != nil {
		return 0, fmt.Errorf("count estoque baixo: %w", err)
	}
	return n, nil
}
