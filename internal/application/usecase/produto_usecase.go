package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

// ProdutoUseCase CRUD de produtos, sempre no recorte do usuário dono.
// A quantidade também muda via Stock Ledger (transações); aqui só por edição direta do dono.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um produto para o usuário.
func (uc *ProdutoUseCase) Create(userID string, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Quantidade < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Produto{
		ID:          uuid.New().String(),
		Nome:        in.Nome,
		Valor:       in.Valor,
		Quantidade:  in.Quantidade,
		Descricao:   in.Descricao,
		CategoriaID: in.CategoriaID,
		UserID:      userID,
		CriadoEm:    time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// List lista os produtos do usuário.
func (uc *ProdutoUseCase) List(userID string) ([]*dto.ProdutoResponse, error) {
	produtos, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, toProdutoResponse(p))
	}
	return out, nil
}

// Update aplica apenas os campos presentes no request; os omitidos ficam inalterados.
func (uc *ProdutoUseCase) Update(userID, id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		p.Nome = *in.Nome
	}
	if in.Valor != nil {
		p.Valor = *in.Valor
	}
	if in.Quantidade != nil {
		if *in.Quantidade < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		p.Quantidade = *in.Quantidade
	}
	if in.Descricao != nil {
		p.Descricao = *in.Descricao
	}
	if in.CategoriaID != nil {
		p.CategoriaID = in.CategoriaID
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Delete remove o produto do usuário.
func (uc *ProdutoUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(id, userID)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:          p.ID,
		Nome:        p.Nome,
		Valor:       p.Valor,
		Quantidade:  p.Quantidade,
		Descricao:   p.Descricao,
		CategoriaID: p.CategoriaID,
		UserID:      p.UserID,
		CriadoEm:    p.CriadoEm,
	}
}
