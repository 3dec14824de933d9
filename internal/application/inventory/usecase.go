// Package inventory contém o motor de movimentações de estoque: o único
// caminho de código que altera o saldo de um produto.
package inventory

import (
	"context"
	"time"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentações (ENTRADA/SAIDA) de forma
// transacional, com bloqueio de linha (SELECT FOR UPDATE) e Commit/Rollback.
//
// Invariantes garantidas aqui:
//   - quantidade do produto nunca fica negativa (SAIDA maior que o saldo
//     é rejeitada antes de qualquer escrita);
//   - lançamento no ledger e atualização do saldo acontecem na mesma
//     transação — nenhum estado parcial é observável;
//   - a checagem de saldo e a escrita enxergam o mesmo snapshot da linha
//     do produto, eliminando o lost update entre POSTs concorrentes.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	invalidator ResumoInvalidator
}

// NewRegisterMovementUseCase constrói o caso de uso. invalidator pode ser
// nil (sem cache a descartar).
func NewRegisterMovementUseCase(txRunner TxRunner, produtoRepo repository.ProdutoRepository, invalidator ResumoInvalidator) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, produtoRepo: produtoRepo, invalidator: invalidator}
}

// Register valida a entrada, abre a transação, bloqueia a linha do
// produto, aplica a movimentação e devolve o lançamento criado.
//
// Toda validação acontece antes de qualquer escrita: tipo fora do enum,
// quantidade não positiva e produto inexistente são rejeitados sem tocar
// o armazenamento.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.CreateMovimentacaoRequest) (*entity.Movimentacao, error) {
	if in.Tipo == "" || in.ProdutoID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoValido(in.Tipo) {
		return nil, domain.ErrTipoInvalido
	}
	if in.Quantidade <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}

	// Checagem de existência fora da transação: rejeita produtoId
	// desconhecido sem custo de lock. A linha é conferida de novo sob
	// lock, caso o produto seja excluído entre as duas leituras.
	produto, err := uc.produtoRepo.GetByID(ctx, in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrProdutoNotFound
	}

	mov := &entity.Movimentacao{
		Tipo:        in.Tipo,
		Quantidade:  in.Quantidade,
		DataHora:    time.Now(),
		Responsavel: in.Responsavel,
		Observacao:  in.Observacao,
		ProdutoID:   in.ProdutoID,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		// Bloqueia a linha do produto até o Commit/Rollback. Dois POSTs
		// concorrentes para o mesmo produto serializam aqui.
		saldo, err := produtoRepo.QuantidadeForUpdate(ctx, in.ProdutoID)
		if err != nil {
			return err
		}
		if in.Tipo == entity.TipoSaida && in.Quantidade > saldo {
			return domain.ErrEstoqueInsuficiente
		}

		novoSaldo := saldo + in.Quantidade
		if in.Tipo == entity.TipoSaida {
			novoSaldo = saldo - in.Quantidade
		}

		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return produtoRepo.SetQuantidade(ctx, in.ProdutoID, novoSaldo)
	})
	if err != nil {
		return nil, err
	}
	if uc.invalidator != nil {
		uc.invalidator.InvalidarResumo(ctx)
	}
	return mov, nil
}
