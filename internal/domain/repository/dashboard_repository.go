package repository

import "context"

// DashboardRepository concentra as consultas agregadas de somente leitura
// usadas pelo resumo do dashboard.
type DashboardRepository interface {
	CountProdutos(ctx context.Context) (int, error)
	CountCategorias(ctx context.Context) (int, error)
	SumEstoque(ctx context.Context) (int, error)
	CountEstoqueBaixo(ctx context.Context) (int, error)
}
