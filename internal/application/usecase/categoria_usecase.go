package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorias, sempre no recorte do usuário dono.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create cria uma categoria para o usuário. Cor omitida recebe a cor padrão.
func (uc *CategoriaUseCase) Create(userID string, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	cor := in.Cor
	if cor == "" {
		cor = entity.CorPadrao
	}
	c := &entity.Categoria{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Cor:       cor,
		UserID:    userID,
		CriadoEm:  time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// List lista as categorias do usuário.
func (uc *CategoriaUseCase) List(userID string) ([]*dto.CategoriaResponse, error) {
	categorias, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// Update aplica apenas os campos presentes no request; os omitidos ficam inalterados.
func (uc *CategoriaUseCase) Update(userID, id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
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
	if in.Descricao != nil {
		c.Descricao = *in.Descricao
	}
	if in.Cor != nil {
		c.Cor = *in.Cor
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Delete remove a categoria do usuário.
func (uc *CategoriaUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(id, userID)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Descricao: c.Descricao,
		Cor:       c.Cor,
		UserID:    c.UserID,
		CriadoEm:  c.CriadoEm,
	}
}
