package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes, sempre no recorte do usuário dono.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um cliente para o usuário.
func (uc *ClienteUseCase) Create(userID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	c := &entity.Cliente{
		ID:       uuid.New().String(),
		Nome:     in.Nome,
		Email:    in.Email,
		Telefone: in.Telefone,
		Endereco: in.Endereco,
		UserID:   userID,
		CriadoEm: time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// List lista os clientes do usuário.
func (uc *ClienteUseCase) List(userID string) ([]*dto.ClienteResponse, error) {
	clientes, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update aplica apenas os campos presentes no request; os omitidos ficam inalterados.
func (uc *ClienteUseCase) Update(userID, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		c.Nome = *in.Nome
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefone != nil {
		c.Telefone = *in.Telefone
	}
	if in.Endereco != nil {
		c.Endereco = *in.Endereco
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete remove o cliente do usuário.
func (uc *ClienteUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(id, userID)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: c.Telefone,
		Endereco: c.Endereco,
		UserID:   c.UserID,
		CriadoEm: c.CriadoEm,
	}
}
