package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/application/inventory"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês de teste
// ──────────────────────────────────────────────────────────────────────────────

// fakeProdutoRepo mantém o saldo em memória e conta as escritas.
type fakeProdutoRepo struct {
	produtos  map[int64]*entity.Produto
	saldos    map[int64]int
	setCalls  int
	lockCalls int
	createErr error
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{
		produtos: map[int64]*entity.Produto{},
		saldos:   map[int64]int{},
	}
}

func (f *fakeProdutoRepo) add(p *entity.Produto) {
	f.produtos[p.ID] = p
	f.saldos[p.ID] = p.Quantidade
}

func (f *fakeProdutoRepo) Create(_ context.Context, p *entity.Produto) error {
	if f.createErr != nil {
		return f.createErr
	}
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

func (f *fakeProdutoRepo) List(_ context.Context, _ repository.ProdutoFilter) ([]*entity.Produto, error) {
	return nil, nil
}

func (f *fakeProdutoRepo) ListEstoqueBaixo(_ context.Context) ([]*entity.Produto, error) {
	return nil, nil
}

func (f *fakeProdutoRepo) CountByCategoria(_ context.Context, _ int64) (int, error) {
	return 0, nil
}

func (f *fakeProdutoRepo) Update(_ context.Context, _ *entity.Produto) error { return nil }
func (f *fakeProdutoRepo) Delete(_ context.Context, _ int64) error           { return nil }

func (f *fakeProdutoRepo) QuantidadeForUpdate(_ context.Context, id int64) (int, error) {
	f.lockCalls++
	saldo, ok := f.saldos[id]
	if !ok {
		return 0, domain.ErrProdutoNotFound
	}
	return saldo, nil
}

func (f *fakeProdutoRepo) SetQuantidade(_ context.Context, id int64, quantidade int) error {
	f.setCalls++
	f.saldos[id] = quantidade
	if p, ok := f.produtos[id]; ok {
		p.Quantidade = quantidade
	}
	return nil
}

// fakeMovRepo acumula os lançamentos criados.
type fakeMovRepo struct {
	movs      []*entity.Movimentacao
	createErr error
}

func (f *fakeMovRepo) Create(_ context.Context, m *entity.Movimentacao) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = int64(len(f.movs) + 1)
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovRepo) List(_ context.Context, _ repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	return f.movs, nil
}

func (f *fakeMovRepo) ListByProduto(_ context.Context, _ int64, _ int) ([]*entity.Movimentacao, error) {
	return f.movs, nil
}

func (f *fakeMovRepo) CountByProduto(_ context.Context, _ int64) (int, error) {
	return len(f.movs), nil
}

// fakeTxRunner executa o callback e desfaz as escritas quando ele falha,
// imitando o Rollback da transação real.
type fakeTxRunner struct {
	produtoRepo *fakeProdutoRepo
	movRepo     *fakeMovRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	saldosAntes := map[int64]int{}
	for id, s := range f.produtoRepo.saldos {
		saldosAntes[id] = s
	}
	movsAntes := len(f.movRepo.movs)

	if err := fn(f.movRepo, f.produtoRepo); err != nil {
		f.produtoRepo.saldos = saldosAntes
		for id, s := range saldosAntes {
			if p, ok := f.produtoRepo.produtos[id]; ok {
				p.Quantidade = s
			}
		}
		f.movRepo.movs = f.movRepo.movs[:movsAntes]
		return err
	}
	return nil
}

// serializingTxRunner serializa transações concorrentes com um mutex,
// fazendo o papel do bloqueio de linha (FOR UPDATE) do banco real.
type serializingTxRunner struct {
	mu    sync.Mutex
	inner *fakeTxRunner
}

func (s *serializingTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Run(ctx, fn)
}

// fakeInvalidator conta os descartes de cache solicitados.
type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) InvalidarResumo(_ context.Context) { f.calls++ }

func setup(saldoInicial int) (*inventory.RegisterMovementUseCase, *fakeProdutoRepo, *fakeMovRepo) {
	produtoRepo := newFakeProdutoRepo()
	produtoRepo.add(&entity.Produto{
		ID:            1,
		Nome:          "Parafuso sextavado",
		Codigo:        "PRF-001",
		Quantidade:    saldoInicial,
		EstoqueMinimo: 5,
		CategoriaID:   1,
	})
	movRepo := &fakeMovRepo{}
	tx := &fakeTxRunner{produtoRepo: produtoRepo, movRepo: movRepo}
	return inventory.NewRegisterMovementUseCase(tx, produtoRepo, nil), produtoRepo, movRepo
}

func registrar(tipo string, quantidade int) dto.CreateMovimentacaoRequest {
	return dto.CreateMovimentacaoRequest{
		Tipo:        tipo,
		Quantidade:  quantidade,
		ProdutoID:   1,
		Responsavel: "maria",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimentações
// ──────────────────────────────────────────────────────────────────────────────

// ENTRADA soma ao saldo e grava o lançamento.
func TestRegister_EntradaSomaAoSaldo(t *testing.T) {
	uc, produtoRepo, movRepo := setup(10)

	mov, err := uc.Register(context.Background(), registrar(entity.TipoEntrada, 7))
	require.NoError(t, err)

	assert.Equal(t, 17, produtoRepo.saldos[1], "ENTRADA de 7 sobre saldo 10 deve resultar em 17")
	require.Len(t, movRepo.movs, 1)
	assert.Equal(t, entity.TipoEntrada, mov.Tipo)
	assert.Equal(t, 7, mov.Quantidade)
	assert.False(t, mov.DataHora.IsZero(), "dataHora deve ser atribuída pelo servidor")
	assert.NotZero(t, mov.ID, "o lançamento deve receber ID do repositório")
}

// SAIDA subtrai do saldo quando há estoque suficiente.
func TestRegister_SaidaSubtraiDoSaldo(t *testing.T) {
	uc, produtoRepo, movRepo := setup(10)

	_, err := uc.Register(context.Background(), registrar(entity.TipoSaida, 7))
	require.NoError(t, err)

	assert.Equal(t, 3, produtoRepo.saldos[1])
	assert.Len(t, movRepo.movs, 1)
}

// SAIDA maior que o saldo é rejeitada sem nenhuma escrita.
func TestRegister_SaidaInsuficienteNaoEscreveNada(t *testing.T) {
	uc, produtoRepo, movRepo := setup(3)

	_, err := uc.Register(context.Background(), registrar(entity.TipoSaida, 5))
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	assert.Equal(t, 3, produtoRepo.saldos[1], "saldo não deve mudar em SAIDA rejeitada")
	assert.Empty(t, movRepo.movs, "nenhum lançamento deve ser gravado")
	assert.Equal(t, 0, produtoRepo.setCalls, "SetQuantidade não deve ser chamado")
}

// SAIDA igual ao saldo é aceita e zera o estoque.
func TestRegister_SaidaIgualAoSaldoZeraEstoque(t *testing.T) {
	uc, produtoRepo, _ := setup(5)

	_, err := uc.Register(context.Background(), registrar(entity.TipoSaida, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, produtoRepo.saldos[1])
}

// Sequência completa: 10 → SAIDA 7 → 3 → SAIDA 5 rejeitada → ENTRADA 20 → 23.
func TestRegister_SequenciaDeMovimentacoes(t *testing.T) {
	uc, produtoRepo, movRepo := setup(10)
	ctx := context.Background()

	_, err := uc.Register(ctx, registrar(entity.TipoSaida, 7))
	require.NoError(t, err)
	assert.Equal(t, 3, produtoRepo.saldos[1])

	_, err = uc.Register(ctx, registrar(entity.TipoSaida, 5))
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Equal(t, 3, produtoRepo.saldos[1], "a rejeição não pode alterar o saldo")

	_, err = uc.Register(ctx, registrar(entity.TipoEntrada, 20))
	require.NoError(t, err)
	assert.Equal(t, 23, produtoRepo.saldos[1])

	assert.Len(t, movRepo.movs, 2, "apenas as movimentações aceitas entram no ledger")
}

// Duas SAIDAs simultâneas de 5 sobre saldo 5: exatamente uma é aceita, a
// outra recebe estoque insuficiente, o saldo termina em zero e o ledger
// registra um único lançamento.
func TestRegister_SaidasConcorrentesSerializamNoLock(t *testing.T) {
	produtoRepo := newFakeProdutoRepo()
	produtoRepo.add(&entity.Produto{
		ID:            1,
		Nome:          "Parafuso sextavado",
		Codigo:        "PRF-001",
		Quantidade:    5,
		EstoqueMinimo: 5,
		CategoriaID:   1,
	})
	movRepo := &fakeMovRepo{}
	tx := &serializingTxRunner{inner: &fakeTxRunner{produtoRepo: produtoRepo, movRepo: movRepo}}
	uc := inventory.NewRegisterMovementUseCase(tx, produtoRepo, nil)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Register(context.Background(), registrar(entity.TipoSaida, 5))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var aceitas, insuficientes int
	for err := range errs {
		switch {
		case err == nil:
			aceitas++
		case errors.Is(err, domain.ErrEstoqueInsuficiente):
			insuficientes++
		default:
			t.Fatalf("erro inesperado: %v", err)
		}
	}

	assert.Equal(t, 1, aceitas, "apenas uma das SAIDAs concorrentes pode ser aceita")
	assert.Equal(t, 1, insuficientes, "a outra deve ser rejeitada por saldo insuficiente")
	assert.Equal(t, 0, produtoRepo.saldos[1], "o saldo nunca fica negativo")
	assert.Len(t, movRepo.movs, 1, "só a movimentação aceita entra no ledger")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação de entrada (nada chega ao armazenamento)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ValidacaoRejeitaAntesDeEscrever(t *testing.T) {
	cases := []struct {
		name    string
		in      dto.CreateMovimentacaoRequest
		wantErr error
	}{
		{
			name:    "tipo vazio",
			in:      dto.CreateMovimentacaoRequest{Quantidade: 1, ProdutoID: 1},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "produtoId ausente",
			in:      dto.CreateMovimentacaoRequest{Tipo: entity.TipoEntrada, Quantidade: 1},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "tipo fora do enum",
			in:      dto.CreateMovimentacaoRequest{Tipo: "AJUSTE", Quantidade: 1, ProdutoID: 1},
			wantErr: domain.ErrTipoInvalido,
		},
		{
			name:    "quantidade zero",
			in:      registrar(entity.TipoEntrada, 0),
			wantErr: domain.ErrQuantidadeInvalida,
		},
		{
			name:    "quantidade negativa",
			in:      registrar(entity.TipoSaida, -3),
			wantErr: domain.ErrQuantidadeInvalida,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, produtoRepo, movRepo := setup(10)

			_, err := uc.Register(context.Background(), tc.in)
			require.ErrorIs(t, err, tc.wantErr)

			assert.Equal(t, 10, produtoRepo.saldos[1])
			assert.Empty(t, movRepo.movs)
			assert.Equal(t, 0, produtoRepo.lockCalls, "validação falha antes de abrir a transação")
		})
	}
}

// produtoId desconhecido é rejeitado antes da transação.
func TestRegister_ProdutoInexistente(t *testing.T) {
	uc, produtoRepo, movRepo := setup(10)

	in := registrar(entity.TipoEntrada, 1)
	in.ProdutoID = 99
	_, err := uc.Register(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrProdutoNotFound)
	assert.Empty(t, movRepo.movs)
	assert.Equal(t, 0, produtoRepo.lockCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidade
// ──────────────────────────────────────────────────────────────────────────────

// Falha ao gravar o lançamento desfaz a transação inteira: o saldo
// permanece o de antes.
func TestRegister_FalhaNoLedgerDesfazTudo(t *testing.T) {
	uc, produtoRepo, movRepo := setup(10)
	movRepo.createErr = errors.New("conexão perdida")

	_, err := uc.Register(context.Background(), registrar(entity.TipoEntrada, 5))
	require.Error(t, err)

	assert.Equal(t, 10, produtoRepo.saldos[1], "rollback deve restaurar o saldo")
	assert.Empty(t, movRepo.movs)
}

// Lançamento aceito descarta o resumo do dashboard em cache; lançamento
// rejeitado deixa o cache como está.
func TestRegister_LancamentoAceitoInvalidaCacheDoDashboard(t *testing.T) {
	produtoRepo := newFakeProdutoRepo()
	produtoRepo.add(&entity.Produto{ID: 1, Nome: "Cabo", Codigo: "CB-01", Quantidade: 3, EstoqueMinimo: 5, CategoriaID: 1})
	movRepo := &fakeMovRepo{}
	tx := &fakeTxRunner{produtoRepo: produtoRepo, movRepo: movRepo}
	inv := &fakeInvalidator{}
	uc := inventory.NewRegisterMovementUseCase(tx, produtoRepo, inv)
	ctx := context.Background()

	_, err := uc.Register(ctx, registrar(entity.TipoEntrada, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, inv.calls, "ENTRADA aceita deve invalidar o resumo")

	_, err = uc.Register(ctx, registrar(entity.TipoSaida, 50))
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Equal(t, 1, inv.calls, "rejeição não altera agregados, o cache permanece")
}

// O produto excluído entre a checagem e o lock é detectado sob o lock.
func TestRegister_ProdutoSomeEntreChecagemELock(t *testing.T) {
	produtoRepo := newFakeProdutoRepo()
	p := &entity.Produto{ID: 1, Nome: "Cabo", Codigo: "CB-01", Quantidade: 4, EstoqueMinimo: 5, CategoriaID: 1}
	produtoRepo.add(p)
	movRepo := &fakeMovRepo{}
	tx := &fakeTxRunner{produtoRepo: produtoRepo, movRepo: movRepo}
	uc := inventory.NewRegisterMovementUseCase(tx, produtoRepo, nil)

	// some o saldo do mapa para simular a exclusão concorrente: o
	// GetByID ainda enxerga o produto, o FOR UPDATE não.
	delete(produtoRepo.saldos, 1)

	_, err := uc.Register(context.Background(), registrar(entity.TipoEntrada, 1))
	require.ErrorIs(t, err, domain.ErrProdutoNotFound)
	assert.Empty(t, movRepo.movs)
}
