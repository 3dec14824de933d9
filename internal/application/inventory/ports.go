package inventory

import (
	"context"

	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante atomicidade entre o
// lançamento no ledger e a atualização do saldo do produto: ou os dois
// efeitos são confirmados, ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}

// ResumoInvalidator descarta agregados em cache que um lançamento aceito
// torna obsoletos (o resumo do dashboard).
type ResumoInvalidator interface {
	InvalidarResumo(ctx context.Context)
}
