package repository

import "github.com/nexus-estoque/api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente, sempre filtrado pelo dono.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id, userID string) (*entity.Cliente, error)
	ListByUser(userID string) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id, userID string) error
}
