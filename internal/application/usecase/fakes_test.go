package usecase_test

import (
	"context"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// Dublês em memória compartilhados pelos testes de categorias e produtos.

type fakeCategoriaRepo struct {
	categorias map[int64]*entity.Categoria
	nextID     int64
	deleted    []int64
}

func newFakeCategoriaRepo() *fakeCategoriaRepo {
	return &fakeCategoriaRepo{categorias: map[int64]*entity.Categoria{}, nextID: 1}
}

func (f *fakeCategoriaRepo) add(c *entity.Categoria) *entity.Categoria {
	if c.ID == 0 {
		c.ID = f.nextID
		f.nextID++
	}
	f.categorias[c.ID] = c
	return c
}

func (f *fakeCategoriaRepo) Create(_ context.Context, c *entity.Categoria) error {
	f.add(c)
	return nil
}

func (f *fakeCategoriaRepo) GetByID(_ context.Context, id int64) (*entity.Categoria, error) {
	return f.categorias[id], nil
}

func (f *fakeCategoriaRepo) List(_ context.Context) ([]*entity.Categoria, error) {
	out := make([]*entity.Categoria, 0, len(f.categorias))
	for _, c := range f.categorias {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoriaRepo) Update(_ context.Context, c *entity.Categoria) error {
	f.categorias[c.ID] = c
	return nil
}

func (f *fakeCategoriaRepo) Delete(_ context.Context, id int64) error {
	delete(f.categorias, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProdutoRepo struct {
	produtos    map[int64]*entity.Produto
	nextID      int64
	updated     []*entity.Produto
	deleted     []int64
	createCalls int
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: map[int64]*entity.Produto{}, nextID: 1}
}

func (f *fakeProdutoRepo) add(p *entity.Produto) *entity.Produto {
	if p.ID == 0 {
		p.ID = f.nextID
		f.nextID++
	}
	f.produtos[p.ID] = p
	return p
}

func (f *fakeProdutoRepo) Create(_ context.Context, p *entity.Produto) error {
	f.createCalls++
	f.add(p)
	return nil
}

func (f *fakeProdutoRepo) GetByID(_ context.Context, id int64) (*entity.Produto, error) {
	return f.produtos[id], nil
}

func (f *fakeProdutoRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProdutoRepo) List(_ context.Context, filtro repository.ProdutoFilter) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if filtro.CategoriaID != nil && p.CategoriaID != *filtro.CategoriaID {
			continue
		}
		if filtro.EstoqueBaixo && p.Quantidade >= p.EstoqueMinimo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProdutoRepo) ListEstoqueBaixo(_ context.Context) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if p.Quantidade < p.EstoqueMinimo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) CountByCategoria(_ context.Context, categoriaID int64) (int, error) {
	n := 0
	for _, p := range f.produtos {
		if p.CategoriaID == categoriaID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProdutoRepo) Update(_ context.Context, p *entity.Produto) error {
	f.produtos[p.ID] = p
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeProdutoRepo) Delete(_ context.Context, id int64) error {
	delete(f.produtos, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProdutoRepo) QuantidadeForUpdate(_ context.Context, id int64) (int, error) {
	return f.produtos[id].Quantidade, nil
}

func (f *fakeProdutoRepo) SetQuantidade(_ context.Context, id int64, quantidade int) error {
	f.produtos[id].Quantidade = quantidade
	return nil
}

type fakeMovRepo struct {
	movs []*entity.Movimentacao
}

func (f *fakeMovRepo) Create(_ context.Context, m *entity.Movimentacao) error {
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovRepo) List(_ context.Context, _ repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	return f.movs, nil
}

func (f *fakeMovRepo) ListByProduto(_ context.Context, produtoID int64, limit int) ([]*entity.Movimentacao, error) {
	var out []*entity.Movimentacao
	for _, m := range f.movs {
		if m.ProdutoID == produtoID {
			out = append(out, m)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMovRepo) CountByProduto(_ context.Context, produtoID int64) (int, error) {
	n := 0
	for _, m := range f.movs {
		if m.ProdutoID == produtoID {
			n++
		}
	}
	return n, nil
}
