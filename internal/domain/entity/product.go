package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstoqueMinimoPadrao é aplicado quando o cadastro não informa o limite.
const EstoqueMinimoPadrao = 5

// Produto é um item controlado pelo estoque. Quantidade é o saldo corrente
// do ledger de movimentações (mantido incrementalmente pelo motor de
// movimentações; nunca editado direto pelo CRUD).
type Produto struct {
	ID            int64
	Nome          string
	Descricao     string
	Codigo        string // código único global
	Preco         decimal.Decimal
	Quantidade    int
	EstoqueMinimo int
	CategoriaID   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Categoria preenchida em consultas com JOIN; nil nos demais casos.
	Categoria *Categoria
}
