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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação do porto ClienteRepository sobre PostgreSQL (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador de persistência para clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nome, email, telefone, endereco, user_id, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nome, c.Email, c.Telefone, c.Endereco, c.UserID, c.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID, no recorte do dono.
func (r *ClienteRepo) GetByID(id, userID string) (*entity.Cliente, error) {
	query := `
		SELECT id, nome, email, telefone, endereco, user_id, criado_em
		FROM clientes WHERE id = $1 AND user_id = $2`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Endereco, &c.UserID, &c.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// ListByUser lista os clientes do usuário.
func (r *ClienteRepo) ListByUser(userID string) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nome, email, telefone, endereco, user_id, criado_em
		FROM clientes WHERE user_id = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Endereco, &c.UserID, &c.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente existente, no recorte do dono.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nome = $3, email = $4, telefone = $5, endereco = $6
		WHERE id = $1 AND user_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.UserID, c.Nome, c.Email, c.Telefone, c.Endereco,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Delete remove um cliente, no recorte do dono.
func (r *ClienteRepo) Delete(id, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM clientes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
