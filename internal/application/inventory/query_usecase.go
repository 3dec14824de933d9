package inventory

import (
	"context"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// QueryUseCase consultas somente leitura sobre o ledger de movimentações.
type QueryUseCase struct {
	movRepo repository.MovimentacaoRepository
}

// NewQueryUseCase constrói o caso de uso.
func NewQueryUseCase(movRepo repository.MovimentacaoRepository) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo}
}

// List devolve as movimentações que casam com o filtro, mais recentes
// primeiro, com produto e categoria embutidos.
func (uc *QueryUseCase) List(ctx context.Context, filtro repository.MovimentacaoFilter) ([]dto.MovimentacaoResponse, error) {
	list, err := uc.movRepo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.NewMovimentacaoResponses(list), nil
}
