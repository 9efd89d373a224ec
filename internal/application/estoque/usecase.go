package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

// UseCase é o motor de consistência transação-estoque: aplica e reverte deltas de
// quantidade de forma atômica com o registro da transação, com bloqueio de fila
// (SELECT FOR UPDATE) na leitura-verificação-escrita.
type UseCase struct {
	txRunner      TxRunner
	transacaoRepo repository.TransacaoRepository // atado ao pool, para leituras fora de tx
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, transacaoRepo repository.TransacaoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, transacaoRepo: transacaoRepo}
}

// Listar devolve as transações do usuário.
func (uc *UseCase) Listar(userID string) ([]*entity.Transacao, error) {
	return uc.transacaoRepo.ListByUser(userID)
}

// RegistrarInput entrada para registrar uma transação de estoque.
type RegistrarInput struct {
	Tipo          string
	ProdutoID     string
	ClienteID     *string
	Quantidade    int64
	ValorUnitario decimal.Decimal
	ValorTotal    decimal.Decimal
	NumeroPedido  string
	Observacoes   string
}

// Registrar cria uma transação e aplica o delta de quantidade no produto, tudo na mesma
// unidade de trabalho:
//   - entrada exige papel >= gerente (qualquer autenticado pode registrar saída);
//   - saída falha com ErrEstoqueInsuficiente se a quantidade atual for menor que a pedida,
//     sem alterar nada;
//   - produto inexistente ou de outro dono: ErrNaoEncontrado.
func (uc *UseCase) Registrar(ctx context.Context, userID, papel string, in RegistrarInput) (*entity.Transacao, error) {
	if !entity.TipoValido(in.Tipo) || in.ProdutoID == "" || in.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Tipo == entity.TipoEntrada && !entity.PapelAtende(papel, entity.PapelGerente) {
		return nil, domain.ErrAcessoNegado
	}

	var out *entity.Transacao
	err := uc.txRunner.Run(ctx, func(
		produtos repository.ProdutoRepository,
		transacoes repository.TransacaoRepository,
	) error {
		// Bloqueia a fila do produto: serializa verificações concorrentes de suficiência
		produto, err := produtos.GetForUpdate(in.ProdutoID, userID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNaoEncontrado
		}

		if in.Tipo == entity.TipoEntrada {
			produto.Quantidade += in.Quantidade
		} else {
			if produto.Quantidade < in.Quantidade {
				return domain.ErrEstoqueInsuficiente
			}
			produto.Quantidade -= in.Quantidade
		}
		if err := produtos.UpdateQuantidade(produto.ID, userID, produto.Quantidade); err != nil {
			return err
		}

		t := &entity.Transacao{
			ID:            uuid.New().String(),
			Tipo:          in.Tipo,
			ProdutoID:     in.ProdutoID,
			ClienteID:     in.ClienteID,
			Quantidade:    in.Quantidade,
			ValorUnitario: in.ValorUnitario,
			ValorTotal:    in.ValorTotal,
			NumeroPedido:  in.NumeroPedido,
			Observacoes:   in.Observacoes,
			UserID:        userID,
			CriadoEm:      time.Now(),
		}
		if err := transacoes.Create(t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Estornar desfaz uma transação: remove o registro e aplica o delta inverso no produto,
// na mesma unidade de trabalho. Exige papel >= gerente.
//
// Se o produto já foi deletado, o estorno remove a transação mesmo assim, sem ajustar
// estoque. O delta inverso não impõe piso: estornar uma entrada pode deixar a quantidade
// negativa, já que está desfazendo uma soma anterior.
func (uc *UseCase) Estornar(ctx context.Context, userID, papel, transacaoID string) error {
	if !entity.PapelAtende(papel, entity.PapelGerente) {
		return domain.ErrAcessoNegado
	}

	return uc.txRunner.Run(ctx, func(
		produtos repository.ProdutoRepository,
		transacoes repository.TransacaoRepository,
	) error {
		t, err := transacoes.GetByID(transacaoID, userID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNaoEncontrado
		}

		produto, err := produtos.GetForUpdate(t.ProdutoID, userID)
		if err != nil {
			return err
		}
		if produto != nil {
			if t.Tipo == entity.TipoEntrada {
				produto.Quantidade -= t.Quantidade
			} else {
				produto.Quantidade += t.Quantidade
			}
			if err := produtos.UpdateQuantidade(produto.ID, userID, produto.Quantidade); err != nil {
				return err
			}
		}

		return transacoes.Delete(t.ID, userID)
	})
}
