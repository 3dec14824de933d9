package dto

import "time"

// CreateMovimentacaoRequest body do POST /api/movimentacoes
// (tipo ENTRADA|SAIDA, quantidade > 0).
type CreateMovimentacaoRequest struct {
	Tipo        string `json:"tipo"`
	Quantidade  int    `json:"quantidade"`
	ProdutoID   int64  `json:"produtoId"`
	Responsavel string `json:"responsavel"`
	Observacao  string `json:"observacao"`
}

// MovimentacaoResponse saída de um lançamento do ledger.
type MovimentacaoResponse struct {
	ID          int64            `json:"id"`
	Tipo        string           `json:"tipo"`
	Quantidade  int              `json:"quantidade"`
	DataHora    time.Time        `json:"dataHora"`
	Responsavel string           `json:"responsavel,omitempty"`
	Observacao  string           `json:"observacao,omitempty"`
	ProdutoID   int64            `json:"produtoId"`
	Produto     *ProdutoResponse `json:"produto,omitempty"`
}
