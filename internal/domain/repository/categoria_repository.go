package repository

import "github.com/nexus-estoque/api/internal/domain/entity"

// CategoriaRepository define o porto de persistência para Categoria.
// Toda leitura e escrita é filtrada pelo usuário dono: um id que existe mas pertence a
// outro usuário é indistinguível de um id inexistente.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id, userID string) (*entity.Categoria, error)
	ListByUser(userID string) ([]*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	Delete(id, userID string) error
}
