package entity

import "time"

// Tipos de movimentação de estoque.
const (
	TipoEntrada = "ENTRADA"
	TipoSaida   = "SAIDA"
)

// TipoValido informa se o tipo pertence ao enum ENTRADA|SAIDA.
func TipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSaida
}

// Movimentacao é um lançamento imutável do ledger de estoque. Depois de
// criada nunca é alterada nem excluída de forma independente do produto.
type Movimentacao struct {
	ID          int64
	Tipo        string
	Quantidade  int // sempre positivo; o sinal vem do Tipo
	DataHora    time.Time
	Responsavel string
	Observacao  string
	ProdutoID   int64

	// Produto preenchido em consultas com JOIN; nil nos demais casos.
	Produto *Produto
}
