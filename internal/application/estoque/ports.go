package estoque

import (
	"context"

	"github.com/nexus-estoque/api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de DB, entregando repositórios
// atados a essa transação. Garante a atomicidade do ledger: mutação do produto e escrita
// (ou remoção) da transação comitam juntas ou sofrem rollback juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtos repository.ProdutoRepository,
		transacoes repository.TransacaoRepository,
	) error) error
}
