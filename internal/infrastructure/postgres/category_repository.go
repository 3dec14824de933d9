package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação do porto CategoriaRepository sobre
// PostgreSQL (usável com pool ou tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste uma nova categoria e preenche o ID gerado.
func (r *CategoriaRepo) Create(ctx context.Context, categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (nome, descricao, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		categoria.Nome, categoria.Descricao, categoria.CreatedAt, categoria.UpdatedAt,
	).Scan(&categoria.ID)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID. Devolve nil quando não existe.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	query := `
		SELECT id, nome, descricao, created_at, updated_at
		FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nome, &c.Descricao, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista todas as categorias em ordem alfabética.
func (r *CategoriaRepo) List(ctx context.Context) ([]*entity.Categoria, error) {
	query := `
		SELECT id, nome, descricao, created_at, updated_at
		FROM categorias ORDER BY nome ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Descricao, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza uma categoria existente.
func (r *CategoriaRepo) Update(ctx context.Context, categoria *entity.Categoria) error {
	query := `
		UPDATE categorias SET nome = $2, descricao = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, categoria.ID, categoria.Nome, categoria.Descricao, categoria.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Delete exclui uma categoria. A FK em produtos devolve o erro de
// domínio caso a checagem de dependentes tenha perdido uma corrida.
func (r *CategoriaRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoriaComProdutos
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
