package postgres

import (
	"context"
	"fmt"

	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre
// PostgreSQL (usável com pool ou tx). O ledger é append-only: não há
// Update nem Delete aqui.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste um lançamento e preenche o ID gerado.
func (r *MovimentacaoRepo) Create(ctx context.Context, mov *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (tipo, quantidade, data_hora, responsavel, observacao, produto_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		mov.Tipo, mov.Quantidade, mov.DataHora, mov.Responsavel, mov.Observacao, mov.ProdutoID,
	).Scan(&mov.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProdutoNotFound
		}
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

const movimentacaoComProdutoQuery = `
	SELECT m.id, m.tipo, m.quantidade, m.data_hora, m.responsavel, m.observacao, m.produto_id,
		p.id, p.nome, p.descricao, p.codigo, p.preco, p.quantidade, p.estoque_minimo,
		p.categoria_id, p.created_at, p.updated_at,
		c.id, c.nome, c.descricao, c.created_at, c.updated_at
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	JOIN categorias c ON c.id = p.categoria_id`

func (r *MovimentacaoRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Movimentacao, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		var p entity.Produto
		var c entity.Categoria
		err := rows.Scan(
			&m.ID, &m.Tipo, &m.Quantidade, &m.DataHora, &m.Responsavel, &m.Observacao, &m.ProdutoID,
			&p.ID, &p.Nome, &p.Descricao, &p.Codigo, &p.Preco, &p.Quantidade, &p.EstoqueMinimo,
			&p.CategoriaID, &p.CreatedAt, &p.UpdatedAt,
			&c.ID, &c.Nome, &c.Descricao, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		p.Categoria = &c
		m.Produto = &p
		list = append(list, &m)
	}
	return list, rows.Err()
}

// List lista lançamentos com produto e categoria, mais recente primeiro.
// Os critérios do filtro são combinados com AND; todos opcionais.
func (r *MovimentacaoRepo) List(ctx context.Context, filtro repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	query := movimentacaoComProdutoQuery + " WHERE 1=1"
	var args []any
	pos := 1
	if filtro.ProdutoID != nil {
		query += fmt.Sprintf(" AND m.produto_id = $%d", pos)
		args = append(args, *filtro.ProdutoID)
		pos++
	}
	if filtro.Tipo != nil {
		query += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, *filtro.Tipo)
		pos++
	}
	if filtro.DataInicio != nil {
		query += fmt.Sprintf(" AND m.data_hora >= $%d", pos)
		args = append(args, *filtro.DataInicio)
		pos++
	}
	if filtro.DataFim != nil {
		query += fmt.Sprintf(" AND m.data_hora <= $%d", pos)
		args = append(args, *filtro.DataFim)
		pos++
	}
	query += " ORDER BY m.data_hora DESC"
	if filtro.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, filtro.Limit)
	}
	return r.queryList(ctx, query, args...)
}

// ListByProduto lista os últimos lançamentos de um produto.
func (r *MovimentacaoRepo) ListByProduto(ctx context.Context, produtoID int64, limit int) ([]*entity.Movimentacao, error) {
	query := movimentacaoComProdutoQuery + " WHERE m.produto_id = $1 ORDER BY m.data_hora DESC"
	args := []any{produtoID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.queryList(ctx, query, args...)
}

// CountByProduto conta os lançamentos de um produto.
func (r *MovimentacaoRepo) CountByProduto(ctx context.Context, produtoID int64) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimentacoes WHERE produto_id = $1`, produtoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movimentacoes by produto: %w", err)
	}
	return count, nil
}
