package repository

import "github.com/nexus-estoque/api/internal/domain/entity"

// ProdutoRepository define o porto de persistência para Produto, sempre filtrado pelo dono.
// GetForUpdate só faz sentido dentro de uma transação (bloqueio de fila via SELECT FOR UPDATE);
// é o que serializa leitura-verificação-escrita de quantidade entre requisições concorrentes.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id, userID string) (*entity.Produto, error)
	GetForUpdate(id, userID string) (*entity.Produto, error)
	ListByUser(userID string) ([]*entity.Produto, error)
	Update(produto *entity.Produto) error
	UpdateQuantidade(id, userID string, quantidade int64) error
	Delete(id, userID string) error
}
