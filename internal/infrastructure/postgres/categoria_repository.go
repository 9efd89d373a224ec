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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação do porto CategoriaRepository sobre PostgreSQL (usável com pool ou tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de persistência para categorias.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste uma nova categoria.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nome, descricao, cor, user_id, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nome, c.Descricao, c.Cor, c.UserID, c.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID, no recorte do dono.
func (r *CategoriaRepo) GetByID(id, userID string) (*entity.Categoria, error) {
	query := `
		SELECT id, nome, descricao, cor, user_id, criado_em
		FROM categorias WHERE id = $1 AND user_id = $2`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.Nome, &c.Descricao, &c.Cor, &c.UserID, &c.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// ListByUser lista as categorias do usuário.
func (r *CategoriaRepo) ListByUser(userID string) ([]*entity.Categoria, error) {
	query := `
		SELECT id, nome, descricao, cor, user_id, criado_em
		FROM categorias WHERE user_id = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Descricao, &c.Cor, &c.UserID, &c.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza uma categoria existente, no recorte do dono.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias SET nome = $3, descricao = $4, cor = $5
		WHERE id = $1 AND user_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.UserID, c.Nome, c.Descricao, c.Cor,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Delete remove uma categoria, no recorte do dono.
func (r *CategoriaRepo) Delete(id, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM categorias WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
