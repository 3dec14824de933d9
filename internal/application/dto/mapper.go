package dto

import "github.com/estoque-pro/estoque-api/internal/domain/entity"

// NewCategoriaResponse converte a entidade para o DTO de saída.
func NewCategoriaResponse(c *entity.Categoria) *CategoriaResponse {
	if c == nil {
		return nil
	}
	return &CategoriaResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Descricao: c.Descricao,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewProdutoResponse converte a entidade para o DTO de saída, incluindo
// a categoria quando veio preenchida do JOIN.
func NewProdutoResponse(p *entity.Produto) *ProdutoResponse {
	if p == nil {
		return nil
	}
	return &ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Codigo:        p.Codigo,
		Preco:         p.Preco,
		Quantidade:    p.Quantidade,
		EstoqueMinimo: p.EstoqueMinimo,
		CategoriaID:   p.CategoriaID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Categoria:     NewCategoriaResponse(p.Categoria),
	}
}

// NewMovimentacaoResponse converte a entidade para o DTO de saída,
// incluindo o produto quando veio preenchido do JOIN.
func NewMovimentacaoResponse(m *entity.Movimentacao) *MovimentacaoResponse {
	if m == nil {
		return nil
	}
	return &MovimentacaoResponse{
		ID:          m.ID,
		Tipo:        m.Tipo,
		Quantidade:  m.Quantidade,
		DataHora:    m.DataHora,
		Responsavel: m.Responsavel,
		Observacao:  m.Observacao,
		ProdutoID:   m.ProdutoID,
		Produto:     NewProdutoResponse(m.Produto),
	}
}

// NewMovimentacaoResponses converte uma lista de lançamentos.
func NewMovimentacaoResponses(list []*entity.Movimentacao) []MovimentacaoResponse {
	out := make([]MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *NewMovimentacaoResponse(m))
	}
	return out
}
