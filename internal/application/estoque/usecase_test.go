package estoque_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-estoque/api/internal/application/estoque"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
//
// O fakeTxRunner emula a semântica transacional de verdade: executa fn sobre um
// clone do estado e só faz "commit" (substitui o estado) se fn devolve nil.
// Assim os testes de atomicidade exercitam o rollback de fato, não só o erro.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	produtos   map[string]*entity.Produto
	transacoes map[string]*entity.Transacao
}

func newMemStore() *memStore {
	return &memStore{
		produtos:   make(map[string]*entity.Produto),
		transacoes: make(map[string]*entity.Transacao),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.produtos {
		cp := *p
		c.produtos[id] = &cp
	}
	for id, t := range s.transacoes {
		ct := *t
		c.transacoes[id] = &ct
	}
	return c
}

type fakeProdutoRepo struct{ store *memStore }

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	r.store.produtos[p.ID] = p
	return nil
}

func (r *fakeProdutoRepo) GetByID(id, userID string) (*entity.Produto, error) {
	p, ok := r.store.produtos[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProdutoRepo) GetForUpdate(id, userID string) (*entity.Produto, error) {
	return r.GetByID(id, userID)
}

func (r *fakeProdutoRepo) ListByUser(userID string) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range r.store.produtos {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProdutoRepo) Update(p *entity.Produto) error {
	existing, ok := r.store.produtos[p.ID]
	if !ok || existing.UserID != p.UserID {
		return domain.ErrNaoEncontrado
	}
	cp := *p
	r.store.produtos[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) UpdateQuantidade(id, userID string, quantidade int64) error {
	p, ok := r.store.produtos[id]
	if !ok || p.UserID != userID {
		return domain.ErrNaoEncontrado
	}
	p.Quantidade = quantidade
	return nil
}

func (r *fakeProdutoRepo) Delete(id, userID string) error {
	p, ok := r.store.produtos[id]
	if !ok || p.UserID != userID {
		return domain.ErrNaoEncontrado
	}
	delete(r.store.produtos, id)
	return nil
}

type fakeTransacaoRepo struct{ store *memStore }

func (r *fakeTransacaoRepo) Create(t *entity.Transacao) error {
	ct := *t
	r.store.transacoes[t.ID] = &ct
	return nil
}

func (r *fakeTransacaoRepo) GetByID(id, userID string) (*entity.Transacao, error) {
	t, ok := r.store.transacoes[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	ct := *t
	return &ct, nil
}

func (r *fakeTransacaoRepo) ListByUser(userID string) ([]*entity.Transacao, error) {
	var out []*entity.Transacao
	for _, t := range r.store.transacoes {
		if t.UserID == userID {
			ct := *t
			out = append(out, &ct)
		}
	}
	return out, nil
}

func (r *fakeTransacaoRepo) Delete(id, userID string) error {
	t, ok := r.store.transacoes[id]
	if !ok || t.UserID != userID {
		return domain.ErrNaoEncontrado
	}
	delete(r.store.transacoes, id)
	return nil
}

type fakeTxRunner struct{ store *memStore }

func (x *fakeTxRunner) Run(ctx context.Context, fn func(
	produtos repository.ProdutoRepository,
	transacoes repository.TransacaoRepository,
) error) error {
	snap := x.store.clone()
	if err := fn(&fakeProdutoRepo{store: snap}, &fakeTransacaoRepo{store: snap}); err != nil {
		return err // rollback: o clone é descartado
	}
	x.store.produtos = snap.produtos
	x.store.transacoes = snap.transacoes
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	donoID  = "00000000-0000-0000-0000-0000000000aa"
	outroID = "00000000-0000-0000-0000-0000000000bb"
)

func novoAmbiente() (*estoque.UseCase, *memStore) {
	store := newMemStore()
	uc := estoque.NewUseCase(&fakeTxRunner{store: store}, &fakeTransacaoRepo{store: store})
	return uc, store
}

func seedProduto(store *memStore, id, userID string, quantidade int64) {
	store.produtos[id] = &entity.Produto{
		ID:         id,
		Nome:       "Teclado mecânico",
		Valor:      decimal.NewFromInt(250),
		Quantidade: quantidade,
		UserID:     userID,
	}
}

func saidaDe(produtoID string, quantidade int64) estoque.RegistrarInput {
	return estoque.RegistrarInput{
		Tipo:          entity.TipoSaida,
		ProdutoID:     produtoID,
		Quantidade:    quantidade,
		ValorUnitario: decimal.NewFromInt(250),
		ValorTotal:    decimal.NewFromInt(250 * quantidade),
	}
}

func entradaDe(produtoID string, quantidade int64) estoque.RegistrarInput {
	in := saidaDe(produtoID, quantidade)
	in.Tipo = entity.TipoEntrada
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar — saída
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_SaidaDecrementaEstoque(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)

	tr, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 3))
	require.NoError(t, err)
	require.NotNil(t, tr)

	assert.Equal(t, int64(7), store.produtos["p1"].Quantidade,
		"a saída deve decrementar a quantidade do produto")
	assert.Equal(t, entity.TipoSaida, tr.Tipo)
	assert.Equal(t, donoID, tr.UserID)
	assert.NotEmpty(t, tr.ID)
	assert.Contains(t, store.transacoes, tr.ID, "a transação deve ser persistida")
}

func TestRegistrar_SaidaEstoqueInsuficiente_NadaMuda(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 2)

	_, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 5))
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	// Atomicidade: nem a quantidade mudou nem transação foi gravada.
	assert.Equal(t, int64(2), store.produtos["p1"].Quantidade)
	assert.Empty(t, store.transacoes)
}

func TestRegistrar_SaidaExata_ZeraEstoque(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 5)

	_, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 5))
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.produtos["p1"].Quantidade,
		"saída igual ao disponível deve zerar, não falhar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar — entrada (exige gerente+)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaComoUsuario_Negado(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)

	_, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, entradaDe("p1", 4))
	assert.ErrorIs(t, err, domain.ErrAcessoNegado,
		"entrada de estoque exige papel gerente ou superior")
	assert.Equal(t, int64(10), store.produtos["p1"].Quantidade)
}

func TestRegistrar_EntradaComoGerente_Incrementa(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)

	tr, err := uc.Registrar(context.Background(), donoID, entity.PapelGerente, entradaDe("p1", 4))
	require.NoError(t, err)

	assert.Equal(t, int64(14), store.produtos["p1"].Quantidade)
	assert.Equal(t, entity.TipoEntrada, tr.Tipo)
}

func TestRegistrar_EntradaComoAdmin_Incrementa(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 0)

	_, err := uc.Registrar(context.Background(), donoID, entity.PapelAdmin, entradaDe("p1", 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.produtos["p1"].Quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar — validações e isolamento
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaInvalida(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)

	casos := []estoque.RegistrarInput{
		{Tipo: "transferencia", ProdutoID: "p1", Quantidade: 1},
		{Tipo: entity.TipoSaida, ProdutoID: "", Quantidade: 1},
		{Tipo: entity.TipoSaida, ProdutoID: "p1", Quantidade: 0},
		{Tipo: entity.TipoSaida, ProdutoID: "p1", Quantidade: -3},
	}
	for _, in := range casos {
		_, err := uc.Registrar(context.Background(), donoID, entity.PapelAdmin, in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida,
			"tipo=%q produto=%q quantidade=%d", in.Tipo, in.ProdutoID, in.Quantidade)
	}
}

func TestRegistrar_ProdutoInexistente(t *testing.T) {
	uc, _ := novoAmbiente()

	_, err := uc.Registrar(context.Background(), donoID, entity.PapelGerente, saidaDe("nao-existe", 1))
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestRegistrar_ProdutoDeOutroUsuario_NaoEncontrado(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", outroID, 10)

	// Isolamento por partição: produto alheio é indistinguível de inexistente.
	_, err := uc.Registrar(context.Background(), donoID, entity.PapelAdmin, saidaDe("p1", 1))
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Equal(t, int64(10), store.produtos["p1"].Quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estornar
// ──────────────────────────────────────────────────────────────────────────────

func TestEstornar_SaidaDevolveEstoque(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)

	tr, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 3))
	require.NoError(t, err)
	require.Equal(t, int64(7), store.produtos["p1"].Quantidade)

	require.NoError(t, uc.Estornar(context.Background(), donoID, entity.PapelGerente, tr.ID))

	assert.Equal(t, int64(10), store.produtos["p1"].Quantidade,
		"estornar uma saída deve devolver a quantidade ao produto")
	assert.NotContains(t, store.transacoes, tr.ID, "a transação estornada deve sumir")
}

func TestEstornar_EntradaPodeFicarNegativo(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 0)

	tr, err := uc.Registrar(context.Background(), donoID, entity.PapelGerente, entradaDe("p1", 5))
	require.NoError(t, err)
	require.Equal(t, int64(5), store.produtos["p1"].Quantidade)

	// Saída consome parte da entrada; estornar a entrada depois não impõe piso.
	_, err = uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 4))
	require.NoError(t, err)

	require.NoError(t, uc.Estornar(context.Background(), donoID, entity.PapelGerente, tr.ID))
	assert.Equal(t, int64(-4), store.produtos["p1"].Quantidade,
		"o delta inverso do estorno não tem piso: quantidade pode ficar negativa")
}

func TestEstornar_ComoUsuario_Negado(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)
	tr, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 2))
	require.NoError(t, err)

	err = uc.Estornar(context.Background(), donoID, entity.PapelUsuario, tr.ID)
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)
	assert.Contains(t, store.transacoes, tr.ID, "a transação deve permanecer intacta")
	assert.Equal(t, int64(8), store.produtos["p1"].Quantidade)
}

func TestEstornar_TransacaoInexistente(t *testing.T) {
	uc, _ := novoAmbiente()
	err := uc.Estornar(context.Background(), donoID, entity.PapelAdmin, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestEstornar_TransacaoDeOutroUsuario_NaoEncontrado(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", outroID, 10)
	tr, err := uc.Registrar(context.Background(), outroID, entity.PapelGerente, entradaDe("p1", 5))
	require.NoError(t, err)

	err = uc.Estornar(context.Background(), donoID, entity.PapelAdmin, tr.ID)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Contains(t, store.transacoes, tr.ID)
}

func TestEstornar_ProdutoJaDeletado_RemoveTransacaoMesmoAssim(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)
	tr, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 3))
	require.NoError(t, err)

	delete(store.produtos, "p1")

	require.NoError(t, uc.Estornar(context.Background(), donoID, entity.PapelGerente, tr.ID),
		"estorno com produto deletado remove a transação sem ajustar estoque")
	assert.NotContains(t, store.transacoes, tr.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_SoTransacoesDoUsuario(t *testing.T) {
	uc, store := novoAmbiente()
	seedProduto(store, "p1", donoID, 10)
	seedProduto(store, "p2", outroID, 10)

	_, err := uc.Registrar(context.Background(), donoID, entity.PapelUsuario, saidaDe("p1", 1))
	require.NoError(t, err)
	_, err = uc.Registrar(context.Background(), outroID, entity.PapelUsuario, saidaDe("p2", 1))
	require.NoError(t, err)

	minhas, err := uc.Listar(donoID)
	require.NoError(t, err)
	require.Len(t, minhas, 1)
	assert.Equal(t, donoID, minhas[0].UserID)
}
