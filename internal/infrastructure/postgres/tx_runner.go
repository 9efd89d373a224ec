package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nexus-estoque/api/internal/application/estoque"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

var _ estoque.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz Commit ou Rollback.
// Cancelamento do ctx aborta a transação (rollback da unidade de trabalho parcial).
func (r *TxRunner) Run(ctx context.Context, fn func(
	produtos repository.ProdutoRepository,
	transacoes repository.TransacaoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	produtoRepo := NewProdutoRepository(tx)
	transacaoRepo := NewTransacaoRepository(tx)

	if err := fn(produtoRepo, transacaoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
