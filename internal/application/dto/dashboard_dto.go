package dto

// DashboardResponse resumo exibido na página inicial.
type DashboardResponse struct {
	TotalProdutos         int                    `json:"totalProdutos"`
	TotalCategorias       int                    `json:"totalCategorias"`
	TotalEstoque          int                    `json:"totalEstoque"`
	ProdutosEstoqueBaixo  int                    `json:"produtosEstoqueBaixo"`
	MovimentacoesRecentes []MovimentacaoResponse `json:"movimentacoesRecentes"`
}
