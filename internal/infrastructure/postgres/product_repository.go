package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
	"github.com/estoque-pro/estoque-api/pkg/textutil"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoComCategoriaColunas = `
	p.id, p.nome, p.descricao, p.codigo, p.preco, p.quantidade, p.estoque_minimo,
	p.categoria_id, p.created_at, p.updated_at,
	c.id, c.nome, c.descricao, c.created_at, c.updated_at`

func scanProdutoComCategoria(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var c entity.Categoria
	err := row.Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.Codigo, &p.Preco, &p.Quantidade, &p.EstoqueMinimo,
		&p.CategoriaID, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Nome, &c.Descricao, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Categoria = &c
	return &p, nil
}

// Create persiste um novo produto e preenche o ID gerado. Viola a
// unicidade do código -> domain.ErrCodigoDuplicado (o caso de uso checa
// antes; a constraint cobre a corrida entre dois cadastros simultâneos).
func (r *ProdutoRepo) Create(ctx context.Context, produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (nome, descricao, codigo, preco, quantidade, estoque_minimo, categoria_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		produto.Nome, produto.Descricao, produto.Codigo, produto.Preco,
		produto.Quantidade, produto.EstoqueMinimo, produto.CategoriaID,
		produto.CreatedAt, produto.UpdatedAt,
	).Scan(&produto.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCategoriaNotFound
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto com a categoria. Devolve nil quando não existe.
func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	query := `
		SELECT ` + produtoComCategoriaColunas + `
		FROM produtos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE p.id = $1`
	p, err := scanProdutoComCategoria(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetByCodigo obtém um produto pelo código único. Devolve nil quando não
// existe.
func (r *ProdutoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Produto, error) {
	query := `
		SELECT ` + produtoComCategoriaColunas + `
		FROM produtos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE p.codigo = $1`
	p, err := scanProdutoComCategoria(r.q.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto by codigo: %w", err)
	}
	return p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutraliza os curingas do LIKE (% e _) e o caractere de
// escape no termo de busca, que deve casar literalmente.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// List lista produtos conforme o filtro, em ordem alfabética. A busca
// textual casa nome ou código sem distinção de acentos (unaccent no SQL,
// Fold no termo de entrada) e trata curingas do LIKE como texto literal.
func (r *ProdutoRepo) List(ctx context.Context, filtro repository.ProdutoFilter) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoComCategoriaColunas + `
		FROM produtos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filtro.CategoriaID != nil {
		query += fmt.Sprintf(" AND p.categoria_id = $%d", pos)
		args = append(args, *filtro.CategoriaID)
		pos++
	}
	if filtro.EstoqueBaixo {
		query += " AND p.quantidade < p.estoque_minimo"
	}
	if filtro.Busca != "" {
		query += fmt.Sprintf(" AND (unaccent(lower(p.nome)) LIKE '%%' || $%d || '%%' OR unaccent(lower(p.codigo)) LIKE '%%' || $%d || '%%')", pos, pos)
		args = append(args, escapeLike(textutil.Fold(filtro.Busca)))
		pos++
	}
	query += " ORDER BY p.nome ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProdutoComCategoria(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListEstoqueBaixo lista os produtos com quantidade abaixo do estoque
// mínimo, mais crítico primeiro. Ponto autoritativo da comparação
// quantidade < estoque_minimo.
func (r *ProdutoRepo) ListEstoqueBaixo(ctx context.Context) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoComCategoriaColunas + `
		FROM produtos p
		JOIN categorias c ON c.id = p.categoria_id
		WHERE p.quantidade < p.estoque_minimo
		ORDER BY p.quantidade ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list estoque baixo: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProdutoComCategoria(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByCategoria conta os produtos de uma categoria.
func (r *ProdutoRepo) CountByCategoria(ctx context.Context, categoriaID int64) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM produtos WHERE categoria_id = $1`, categoriaID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count produtos by categoria: %w", err)
	}
	return count, nil
}

// Update atualiza os dados cadastrais. Não toca em quantidade: o saldo
// só muda via SetQuantidade dentro do motor de movimentações.
func (r *ProdutoRepo) Update(ctx context.Context, produto *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, descricao = $3, codigo = $4, preco = $5, estoque_minimo = $6, categoria_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		produto.ID, produto.Nome, produto.Descricao, produto.Codigo, produto.Preco,
		produto.EstoqueMinimo, produto.CategoriaID, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCategoriaNotFound
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Delete exclui um produto. A FK em movimentacoes devolve o erro de
// domínio caso a checagem de dependentes tenha perdido uma corrida.
func (r *ProdutoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProdutoComMovimentos
		}
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// QuantidadeForUpdate lê o saldo corrente bloqueando a linha do produto
// (SELECT ... FOR UPDATE) até o fim da transação. Duas movimentações
// concorrentes do mesmo produto serializam neste ponto.
func (r *ProdutoRepo) QuantidadeForUpdate(ctx context.Context, id int64) (int, error) {
	var quantidade int
	err := r.q.QueryRow(ctx,
		`SELECT quantidade FROM produtos WHERE id = $1 FOR UPDATE`, id,
	).Scan(&quantidade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProdutoNotFound
		}
		return 0, fmt.Errorf("get quantidade for update: %w", err)
	}
	return quantidade, nil
}

// SetQuantidade grava o novo saldo do produto.
func (r *ProdutoRepo) SetQuantidade(ctx context.Context, id int64, quantidade int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE produtos SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrEstoqueInsuficiente
		}
		return fmt.Errorf("set quantidade: %w", err)
	}
	return nil
}
