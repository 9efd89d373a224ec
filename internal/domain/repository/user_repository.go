package repository

import "github.com/nexus-estoque/api/internal/domain/entity"

// UserRepository define o porto de persistência para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
