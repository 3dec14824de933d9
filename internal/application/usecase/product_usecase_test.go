package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/application/usecase"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

func precoDe(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func setupProduto() (*usecase.ProdutoUseCase, *fakeProdutoRepo, *fakeCategoriaRepo, *fakeMovRepo) {
	categoriaRepo := newFakeCategoriaRepo()
	categoriaRepo.add(&entity.Categoria{Nome: "Ferragens"})
	produtoRepo := newFakeProdutoRepo()
	movRepo := &fakeMovRepo{}
	return usecase.NewProdutoUseCase(produtoRepo, categoriaRepo, movRepo), produtoRepo, categoriaRepo, movRepo
}

func criarProdutoValido() dto.CreateProdutoRequest {
	return dto.CreateProdutoRequest{
		Nome:        "Parafuso sextavado",
		Codigo:      "PRF-001",
		Preco:       precoDe("2.50"),
		Quantidade:  10,
		CategoriaID: 1,
	}
}

func TestProdutoCreate_AplicaEstoqueMinimoPadrao(t *testing.T) {
	uc, _, _, _ := setupProduto()

	out, err := uc.Create(context.Background(), criarProdutoValido())
	require.NoError(t, err)

	assert.Equal(t, entity.EstoqueMinimoPadrao, out.EstoqueMinimo,
		"sem estoqueMinimo no cadastro, aplica o padrão")
	assert.Equal(t, 10, out.Quantidade)
	assert.NotZero(t, out.ID)
}

func TestProdutoCreate_CamposObrigatorios(t *testing.T) {
	uc, produtoRepo, _, _ := setupProduto()

	cases := []struct {
		name string
		mod  func(*dto.CreateProdutoRequest)
	}{
		{"sem nome", func(in *dto.CreateProdutoRequest) { in.Nome = "" }},
		{"sem código", func(in *dto.CreateProdutoRequest) { in.Codigo = "" }},
		{"sem preço", func(in *dto.CreateProdutoRequest) { in.Preco = nil }},
		{"sem categoria", func(in *dto.CreateProdutoRequest) { in.CategoriaID = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := criarProdutoValido()
			tc.mod(&in)
			_, err := uc.Create(context.Background(), in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, 0, produtoRepo.createCalls, "nenhum cadastro inválido deve persistir")
}

func TestProdutoCreate_PrecoNegativoRejeitado(t *testing.T) {
	uc, _, _, _ := setupProduto()

	in := criarProdutoValido()
	in.Preco = precoDe("-1.00")
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProdutoCreate_PrecoZeroAceito(t *testing.T) {
	uc, _, _, _ := setupProduto()

	in := criarProdutoValido()
	in.Preco = precoDe("0")
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.Preco.IsZero(), "zero é um preço válido, diferente de ausente")
}

func TestProdutoCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _, _ := setupProduto()

	in := criarProdutoValido()
	in.CategoriaID = 42
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrCategoriaNotFound)
}

func TestProdutoCreate_CodigoDuplicado(t *testing.T) {
	uc, _, _, _ := setupProduto()
	ctx := context.Background()

	_, err := uc.Create(ctx, criarProdutoValido())
	require.NoError(t, err)

	segundo := criarProdutoValido()
	segundo.Nome = "Outro parafuso"
	_, err = uc.Create(ctx, segundo)
	require.ErrorIs(t, err, domain.ErrCodigoDuplicado,
		"o código é único no sistema inteiro")
}

func TestProdutoGetByID_EmbuteHistoricoRecente(t *testing.T) {
	uc, produtoRepo, _, movRepo := setupProduto()
	p := produtoRepo.add(&entity.Produto{Nome: "Cabo", Codigo: "CB-01", CategoriaID: 1, Quantidade: 8, EstoqueMinimo: 5})
	movRepo.movs = []*entity.Movimentacao{
		{ID: 1, Tipo: entity.TipoEntrada, Quantidade: 8, ProdutoID: p.ID, DataHora: time.Now()},
	}

	out, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out.Movimentacoes, 1, "a consulta por ID inclui o histórico recente")
}

func TestProdutoGetByID_Inexistente(t *testing.T) {
	uc, _, _, _ := setupProduto()

	out, err := uc.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, out, "produto inexistente devolve nil (o handler traduz em 404)")
}

func TestProdutoUpdate_NaoTocaQuantidade(t *testing.T) {
	uc, produtoRepo, _, _ := setupProduto()
	p := produtoRepo.add(&entity.Produto{
		Nome: "Cabo", Codigo: "CB-01", CategoriaID: 1,
		Quantidade: 37, EstoqueMinimo: 5,
		Preco: decimal.RequireFromString("9.90"),
	})

	out, err := uc.Update(context.Background(), p.ID, dto.UpdateProdutoRequest{
		Nome:        "Cabo flexível",
		Codigo:      "CB-01",
		Preco:       precoDe("12.00"),
		CategoriaID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 37, out.Quantidade,
		"o saldo pertence ao ledger; o PUT nunca o altera")
	assert.Equal(t, "Cabo flexível", out.Nome)
}

func TestProdutoUpdate_CodigoDeOutroProduto(t *testing.T) {
	uc, produtoRepo, _, _ := setupProduto()
	produtoRepo.add(&entity.Produto{Nome: "A", Codigo: "COD-A", CategoriaID: 1, EstoqueMinimo: 5})
	b := produtoRepo.add(&entity.Produto{Nome: "B", Codigo: "COD-B", CategoriaID: 1, EstoqueMinimo: 5})

	_, err := uc.Update(context.Background(), b.ID, dto.UpdateProdutoRequest{
		Nome:        "B",
		Codigo:      "COD-A",
		Preco:       precoDe("1.00"),
		CategoriaID: 1,
	})
	require.ErrorIs(t, err, domain.ErrCodigoDuplicado)
}

func TestProdutoUpdate_MesmoCodigoProprioAceito(t *testing.T) {
	uc, produtoRepo, _, _ := setupProduto()
	p := produtoRepo.add(&entity.Produto{Nome: "A", Codigo: "COD-A", CategoriaID: 1, EstoqueMinimo: 5})

	_, err := uc.Update(context.Background(), p.ID, dto.UpdateProdutoRequest{
		Nome:        "A renomeado",
		Codigo:      "COD-A",
		Preco:       precoDe("1.00"),
		CategoriaID: 1,
	})
	require.NoError(t, err, "manter o próprio código não é duplicidade")
}

func TestProdutoDelete_BloqueadoComMovimentacoes(t *testing.T) {
	uc, produtoRepo, _, movRepo := setupProduto()
	p := produtoRepo.add(&entity.Produto{Nome: "Cabo", Codigo: "CB-01", CategoriaID: 1, EstoqueMinimo: 5})
	movRepo.movs = []*entity.Movimentacao{{ID: 1, Tipo: entity.TipoEntrada, Quantidade: 1, ProdutoID: p.ID}}

	err := uc.Delete(context.Background(), p.ID)
	require.ErrorIs(t, err, domain.ErrProdutoComMovimentos)
	assert.Empty(t, produtoRepo.deleted, "o produto com histórico nunca é excluído")
}

func TestProdutoDelete_SemMovimentacoes(t *testing.T) {
	uc, produtoRepo, _, _ := setupProduto()
	p := produtoRepo.add(&entity.Produto{Nome: "Cabo", Codigo: "CB-01", CategoriaID: 1, EstoqueMinimo: 5})

	require.NoError(t, uc.Delete(context.Background(), p.ID))
	assert.Equal(t, []int64{p.ID}, produtoRepo.deleted)
}

func TestProdutoDelete_Inexistente(t *testing.T) {
	uc, _, _, _ := setupProduto()

	err := uc.Delete(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
