// Package analytics contém o resumo agregado exibido no dashboard.
package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

const (
	movimentacoesRecentes = 5 // lançamentos exibidos no widget
	cacheKey              = "dashboard:resumo"
	cacheTTL              = 30 * time.Second
)

// Cache porto opcional para o read-through do resumo (Redis em produção).
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DashboardUseCase monta o resumo do dashboard a partir de consultas
// somente leitura. As quatro agregações e a lista de lançamentos recentes
// rodam em paralelo.
type DashboardUseCase struct {
	repo    repository.DashboardRepository
	movRepo repository.MovimentacaoRepository
	cache   Cache // nil = sem cache
}

// NewDashboardUseCase constrói o caso de uso. cache pode ser nil.
func NewDashboardUseCase(repo repository.DashboardRepository, movRepo repository.MovimentacaoRepository, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, movRepo: movRepo, cache: cache}
}

// GetResumo devolve o DashboardResponse, servindo do cache quando
// disponível e fresco. Falha de cache nunca derruba a consulta.
func (uc *DashboardUseCase) GetResumo(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && raw != "" {
			var cached dto.DashboardResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	type countResult struct {
		n   int
		err error
	}
	produtosCh := make(chan countResult, 1)
	categoriasCh := make(chan countResult, 1)
	estoqueCh := make(chan countResult, 1)
	baixoCh := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountProdutos(ctx)
		produtosCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountCategorias(ctx)
		categoriasCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.SumEstoque(ctx)
		estoqueCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountEstoqueBaixo(ctx)
		baixoCh <- countResult{n, err}
	}()

	recentes, err := uc.movRepo.List(ctx, repository.MovimentacaoFilter{Limit: movimentacoesRecentes})
	if err != nil {
		return nil, err
	}

	produtos := <-produtosCh
	categorias := <-categoriasCh
	estoque := <-estoqueCh
	baixo := <-baixoCh
	for _, r := range []countResult{produtos, categorias, estoque, baixo} {
		if r.err != nil {
			return nil, r.err
		}
	}

	out := &dto.DashboardResponse{
		TotalProdutos:         produtos.n,
		TotalCategorias:       categorias.n,
		TotalEstoque:          estoque.n,
		ProdutosEstoqueBaixo:  baixo.n,
		MovimentacoesRecentes: dto.NewMovimentacaoResponses(recentes),
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, string(raw), cacheTTL)
		}
	}
	return out, nil
}

// InvalidarResumo descarta o resumo em cache após uma escrita que altera
// os agregados. Sem cache configurado é um no-op; falha no cache é
// ignorada, o TTL cobre o resto.
func (uc *DashboardUseCase) InvalidarResumo(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, cacheKey)
}
