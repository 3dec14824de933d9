// Package report contém os relatórios somente leitura: estoque baixo
// (lista e PDF) e movimentações por período com totais.
package report

import (
	"context"
	"time"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// PDFGenerator porto para a renderização do relatório de estoque baixo.
type PDFGenerator interface {
	GenerateEstoqueBaixoPDF(ctx context.Context, produtos []*entity.Produto, geradoEm time.Time) ([]byte, error)
}

// UseCase casos de uso de relatório.
type UseCase struct {
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoRepository
	pdf         PDFGenerator
}

// NewUseCase constrói o caso de uso. pdf pode ser nil quando o endpoint
// de PDF não está habilitado.
func NewUseCase(produtoRepo repository.ProdutoRepository, movRepo repository.MovimentacaoRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{produtoRepo: produtoRepo, movRepo: movRepo, pdf: pdf}
}

// EstoqueBaixo lista os produtos com quantidade abaixo do estoque mínimo,
// mais crítico primeiro. A comparação quantidade < estoque_minimo é
// avaliada apenas na consulta SQL; aqui nada é recalculado.
func (uc *UseCase) EstoqueBaixo(ctx context.Context) ([]dto.ProdutoResponse, error) {
	list, err := uc.produtoRepo.ListEstoqueBaixo(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProdutoResponse(p))
	}
	return items, nil
}

// EstoqueBaixoPDF gera a versão PDF do relatório de estoque baixo.
func (uc *UseCase) EstoqueBaixoPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.produtoRepo.ListEstoqueBaixo(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateEstoqueBaixoPDF(ctx, list, time.Now())
}

// Movimentacoes devolve as movimentações do período com o resumo de
// totais (entradas, saídas, saldo e contagem).
func (uc *UseCase) Movimentacoes(ctx context.Context, filtro repository.MovimentacaoFilter) (*dto.RelatorioMovimentacoesResponse, error) {
	list, err := uc.movRepo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	resumo := dto.ResumoMovimentacoes{QuantidadeMovimentacoes: len(list)}
	for _, m := range list {
		switch m.Tipo {
		case entity.TipoEntrada:
			resumo.TotalEntrada += m.Quantidade
		case entity.TipoSaida:
			resumo.TotalSaida += m.Quantidade
		}
	}
	resumo.Saldo = resumo.TotalEntrada - resumo.TotalSaida
	return &dto.RelatorioMovimentacoesResponse{
		Movimentacoes: dto.NewMovimentacaoResponses(list),
		Resumo:        resumo,
	}, nil
}
