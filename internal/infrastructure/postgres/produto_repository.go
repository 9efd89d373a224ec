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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `id, nome, valor, quantidade, descricao, categoria_id, user_id, criado_em`

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, valor, quantidade, descricao, categoria_id, user_id, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Valor, p.Quantidade, p.Descricao, p.CategoriaID, p.UserID, p.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID, no recorte do dono.
func (r *ProdutoRepo) GetByID(id, userID string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1 AND user_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, userID))
}

// GetForUpdate obtém o produto bloqueando a fila (SELECT FOR UPDATE), no recorte do dono.
// Só tem efeito dentro de uma transação; serializa a sequência leitura-verificação-escrita
// de quantidade entre requisições concorrentes.
func (r *ProdutoRepo) GetForUpdate(id, userID string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, userID))
}

func (r *ProdutoRepo) scanOne(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.ID, &p.Nome, &p.Valor, &p.Quantidade, &p.Descricao, &p.CategoriaID, &p.UserID, &p.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// ListByUser lista os produtos do usuário.
func (r *ProdutoRepo) ListByUser(userID string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE user_id = $1 ORDER BY criado_em DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Valor, &p.Quantidade, &p.Descricao, &p.CategoriaID, &p.UserID, &p.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um produto existente, no recorte do dono.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $3, valor = $4, quantidade = $5, descricao = $6, categoria_id = $7
		WHERE id = $1 AND user_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.Nome, p.Valor, p.Quantidade, p.Descricao, p.CategoriaID,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// UpdateQuantidade atualiza somente a quantidade (usada pelo Stock Ledger, dentro de tx).
func (r *ProdutoRepo) UpdateQuantidade(id, userID string, quantidade int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Delete remove um produto, no recorte do dono.
func (r *ProdutoRepo) Delete(id, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM produtos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
