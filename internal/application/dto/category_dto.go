package dto

import "time"

// CategoriaRequest entrada para criar ou atualizar uma categoria.
type CategoriaRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

// CategoriaResponse saída de uma categoria. Produtos só é preenchido na
// consulta por ID.
type CategoriaResponse struct {
	ID        int64             `json:"id"`
	Nome      string            `json:"nome"`
	Descricao string            `json:"descricao,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Produtos  []ProdutoResponse `json:"produtos,omitempty"`
}
