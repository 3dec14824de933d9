package dto

// ResumoMovimentacoes totais do relatório de movimentações.
type ResumoMovimentacoes struct {
	TotalEntrada            int `json:"totalEntrada"`
	TotalSaida              int `json:"totalSaida"`
	Saldo                   int `json:"saldo"`
	QuantidadeMovimentacoes int `json:"quantidadeMovimentacoes"`
}

// RelatorioMovimentacoesResponse saída de GET /api/relatorios/movimentacoes.
type RelatorioMovimentacoesResponse struct {
	Movimentacoes []MovimentacaoResponse `json:"movimentacoes"`
	Resumo        ResumoMovimentacoes    `json:"resumo"`
}
