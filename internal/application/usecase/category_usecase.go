package usecase

import (
	"context"
	"time"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorias.
type CategoriaUseCase struct {
	repo        repository.CategoriaRepository
	produtoRepo repository.ProdutoRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, produtoRepo repository.ProdutoRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, produtoRepo: produtoRepo}
}

// Create cria uma nova categoria.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	categoria := &entity.Categoria{
		Nome:      in.Nome,
		Descricao: in.Descricao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return dto.NewCategoriaResponse(categoria), nil
}

// GetByID obtém uma categoria com os produtos associados.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	out := dto.NewCategoriaResponse(categoria)
	produtos, err := uc.produtoRepo.List(ctx, repository.ProdutoFilter{CategoriaID: &id})
	if err != nil {
		return nil, err
	}
	for _, p := range produtos {
		out.Produtos = append(out.Produtos, *dto.NewProdutoResponse(p))
	}
	return out, nil
}

// List lista todas as categorias em ordem alfabética.
func (uc *CategoriaUseCase) List(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.NewCategoriaResponse(c))
	}
	return items, nil
}

// Update atualiza nome e descrição de uma categoria existente.
func (uc *CategoriaUseCase) Update(ctx context.Context, id int64, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	categoria.Nome = in.Nome
	categoria.Descricao = in.Descricao
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, categoria); err != nil {
		return nil, err
	}
	return dto.NewCategoriaResponse(categoria), nil
}

// Delete exclui uma categoria. Bloqueado enquanto houver produtos
// referenciando a categoria.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id int64) error {
	categoria, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	count, err := uc.produtoRepo.CountByCategoria(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoriaComProdutos
	}
	return uc.repo.Delete(ctx, id)
}
