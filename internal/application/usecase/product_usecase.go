package usecase

import (
	"context"
	"time"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

const historicoMovimentacoes = 10 // lançamentos embutidos na consulta por ID

// ProdutoUseCase casos de uso CRUD para produtos. Quantidade só muda via
// movimentações (inventory.RegisterMovementUseCase); o Update não a toca.
type ProdutoUseCase struct {
	repo          repository.ProdutoRepository
	categoriaRepo repository.CategoriaRepository
	movRepo       repository.MovimentacaoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	repo repository.ProdutoRepository,
	categoriaRepo repository.CategoriaRepository,
	movRepo repository.MovimentacaoRepository,
) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, categoriaRepo: categoriaRepo, movRepo: movRepo}
}

// Create cria um produto. Valida campos obrigatórios, existência da
// categoria e unicidade global do código antes de persistir.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.Codigo == "" || in.Preco == nil || in.CategoriaID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Preco.IsNegative() || in.Quantidade < 0 {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.GetByID(ctx, in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrCategoriaNotFound
	}
	existente, err := uc.repo.GetByCodigo(ctx, in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCodigoDuplicado
	}
	estoqueMinimo := in.EstoqueMinimo
	if estoqueMinimo <= 0 {
		estoqueMinimo = entity.EstoqueMinimoPadrao
	}
	now := time.Now()
	produto := &entity.Produto{
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		Codigo:        in.Codigo,
		Preco:         *in.Preco,
		Quantidade:    in.Quantidade,
		EstoqueMinimo: estoqueMinimo,
		CategoriaID:   in.CategoriaID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, produto); err != nil {
		return nil, err
	}
	return dto.NewProdutoResponse(produto), nil
}

// GetByID obtém um produto com a categoria e os últimos lançamentos.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	out := dto.NewProdutoResponse(produto)
	movs, err := uc.movRepo.ListByProduto(ctx, id, historicoMovimentacoes)
	if err != nil {
		return nil, err
	}
	out.Movimentacoes = dto.NewMovimentacaoResponses(movs)
	return out, nil
}

// List lista produtos conforme o filtro (categoria, estoque baixo, busca).
func (uc *ProdutoUseCase) List(ctx context.Context, filtro repository.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProdutoResponse(p))
	}
	return items, nil
}

// Update atualiza os dados cadastrais de um produto. Quantidade fica de
// fora de propósito: o saldo pertence ao ledger.
func (uc *ProdutoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.Codigo == "" || in.Preco == nil || in.CategoriaID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Preco.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	categoria, err := uc.categoriaRepo.GetByID(ctx, in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrCategoriaNotFound
	}
	existente, err := uc.repo.GetByCodigo(ctx, in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil && existente.ID != id {
		return nil, domain.ErrCodigoDuplicado
	}
	produto.Nome = in.Nome
	produto.Descricao = in.Descricao
	produto.Codigo = in.Codigo
	produto.Preco = *in.Preco
	if in.EstoqueMinimo > 0 {
		produto.EstoqueMinimo = in.EstoqueMinimo
	} else {
		produto.EstoqueMinimo = entity.EstoqueMinimoPadrao
	}
	produto.CategoriaID = in.CategoriaID
	produto.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, produto); err != nil {
		return nil, err
	}
	produto.Categoria = nil // evita devolver a categoria antiga do JOIN
	return dto.NewProdutoResponse(produto), nil
}

// Delete exclui um produto. Bloqueado enquanto houver movimentações no
// ledger — lançamentos nunca são excluídos de forma independente.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id int64) error {
	produto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movRepo.CountByProduto(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrProdutoComMovimentos
	}
	return uc.repo.Delete(ctx, id)
}
