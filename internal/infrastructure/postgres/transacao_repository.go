package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

var _ repository.TransacaoRepository = (*TransacaoRepo)(nil)

// TransacaoRepo implementação do porto TransacaoRepository sobre PostgreSQL (usável com pool ou tx).
type TransacaoRepo struct {
	q Querier
}

// NewTransacaoRepository constrói o adaptador de persistência para transações.
func NewTransacaoRepository(q Querier) *TransacaoRepo {
	return &TransacaoRepo{q: q}
}

const transacaoColunas = `id, tipo, produto_id, cliente_id, quantidade, valor_unitario, valor_total, numero_pedido, observacoes, user_id, criado_em`

// Create persiste uma nova transação.
func (r *TransacaoRepo) Create(t *entity.Transacao) error {
	query := `
		INSERT INTO transacoes (id, tipo, produto_id, cliente_id, quantidade, valor_unitario, valor_total, numero_pedido, observacoes, user_id, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Tipo, t.ProdutoID, t.ClienteID, t.Quantidade, t.ValorUnitario, t.ValorTotal,
		t.NumeroPedido, t.Observacoes, t.UserID, t.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert transacao: %w", err)
	}
	return nil
}

// GetByID obtém uma transação por ID, no recorte do dono.
func (r *TransacaoRepo) GetByID(id, userID string) (*entity.Transacao, error) {
	query := `SELECT ` + transacaoColunas + ` FROM transacoes WHERE id = $1 AND user_id = $2`
	var t entity.Transacao
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&t.ID, &t.Tipo, &t.ProdutoID, &t.ClienteID, &t.Quantidade, &t.ValorUnitario, &t.ValorTotal,
		&t.NumeroPedido, &t.Observacoes, &t.UserID, &t.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transacao: %w", err)
	}
	return &t, nil
}

// ListByUser lista as transações do usuário, da mais recente para a mais antiga.
func (r *TransacaoRepo) ListByUser(userID string) ([]*entity.Transacao, error) {
	query := `SELECT ` + transacaoColunas + ` FROM transacoes WHERE user_id = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list transacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transacao
	for rows.Next() {
		var t entity.Transacao
		if err := rows.Scan(&t.ID, &t.Tipo, &t.ProdutoID, &t.ClienteID, &t.Quantidade, &t.ValorUnitario,
			&t.ValorTotal, &t.NumeroPedido, &t.Observacoes, &t.UserID, &t.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan transacao: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete remove uma transação (estorno), no recorte do dono.
func (r *TransacaoRepo) Delete(id, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM transacoes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transacao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
