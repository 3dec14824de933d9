package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto. Preco é ponteiro
// para distinguir "ausente" de zero (zero é um preço válido).
type CreateProdutoRequest struct {
	Nome          string           `json:"nome"`
	Descricao     string           `json:"descricao"`
	Codigo        string           `json:"codigo"`
	Preco         *decimal.Decimal `json:"preco"`
	Quantidade    int              `json:"quantidade"`
	EstoqueMinimo int              `json:"estoqueMinimo"`
	CategoriaID   int64            `json:"categoriaId"`
}

// UpdateProdutoRequest entrada para atualizar um produto. Não inclui
// Quantidade: o saldo só muda via movimentações.
type UpdateProdutoRequest struct {
	Nome          string           `json:"nome"`
	Descricao     string           `json:"descricao"`
	Codigo        string           `json:"codigo"`
	Preco         *decimal.Decimal `json:"preco"`
	EstoqueMinimo int              `json:"estoqueMinimo"`
	CategoriaID   int64            `json:"categoriaId"`
}

// ProdutoResponse saída de um produto. Categoria e Movimentacoes só são
// preenchidas nas consultas que as incluem.
type ProdutoResponse struct {
	ID            int64                  `json:"id"`
	Nome          string                 `json:"nome"`
	Descricao     string                 `json:"descricao,omitempty"`
	Codigo        string                 `json:"codigo"`
	Preco         decimal.Decimal        `json:"preco"`
	Quantidade    int                    `json:"quantidade"`
	EstoqueMinimo int                    `json:"estoqueMinimo"`
	CategoriaID   int64                  `json:"categoriaId"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	Categoria     *CategoriaResponse     `json:"categoria,omitempty"`
	Movimentacoes []MovimentacaoResponse `json:"movimentacoes,omitempty"`
}
