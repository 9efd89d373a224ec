package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/application/usecase"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
)

// fake em memória do CategoriaRepository.
type categoriaRepoFake struct {
	categorias map[string]*entity.Categoria
}

func newCategoriaRepoFake() *categoriaRepoFake {
	return &categoriaRepoFake{categorias: make(map[string]*entity.Categoria)}
}

func (r *categoriaRepoFake) Create(c *entity.Categoria) error {
	cp := *c
	r.categorias[c.ID] = &cp
	return nil
}

func (r *categoriaRepoFake) GetByID(id, userID string) (*entity.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *categoriaRepoFake) ListByUser(userID string) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range r.categorias {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *categoriaRepoFake) Update(c *entity.Categoria) error {
	existing, ok := r.categorias[c.ID]
	if !ok || existing.UserID != c.UserID {
		return domain.ErrNaoEncontrado
	}
	cp := *c
	r.categorias[c.ID] = &cp
	return nil
}

func (r *categoriaRepoFake) Delete(id, userID string) error {
	c, ok := r.categorias[id]
	if !ok || c.UserID != userID {
		return domain.ErrNaoEncontrado
	}
	delete(r.categorias, id)
	return nil
}

func TestCategoriaCreate_CorPadrao(t *testing.T) {
	uc := usecase.NewCategoriaUseCase(newCategoriaRepoFake())

	out, err := uc.Create(produtoDonoID, dto.CreateCategoriaRequest{Nome: "Periféricos"})
	require.NoError(t, err)
	assert.Equal(t, entity.CorPadrao, out.Cor, "cor omitida recebe a cor padrão")

	comCor, err := uc.Create(produtoDonoID, dto.CreateCategoriaRequest{Nome: "Cabos", Cor: "#FF0000"})
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", comCor.Cor)
}

func TestCategoriaUpdate_Parcial(t *testing.T) {
	uc := usecase.NewCategoriaUseCase(newCategoriaRepoFake())

	created, err := uc.Create(produtoDonoID, dto.CreateCategoriaRequest{
		Nome:      "Periféricos",
		Descricao: "Mouse, teclado",
	})
	require.NoError(t, err)

	novoNome := "Acessórios"
	out, err := uc.Update(produtoDonoID, created.ID, dto.UpdateCategoriaRequest{Nome: &novoNome})
	require.NoError(t, err)

	assert.Equal(t, "Acessórios", out.Nome)
	assert.Equal(t, "Mouse, teclado", out.Descricao, "campos omitidos ficam como estavam")
	assert.Equal(t, entity.CorPadrao, out.Cor)
}

func TestCategoriaUpdate_DeOutroUsuario_NaoEncontrado(t *testing.T) {
	uc := usecase.NewCategoriaUseCase(newCategoriaRepoFake())

	created, err := uc.Create(produtoOutroID, dto.CreateCategoriaRequest{Nome: "Alheia"})
	require.NoError(t, err)

	nome := "invadida"
	_, err = uc.Update(produtoDonoID, created.ID, dto.UpdateCategoriaRequest{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestCategoriaDelete(t *testing.T) {
	repo := newCategoriaRepoFake()
	uc := usecase.NewCategoriaUseCase(repo)

	created, err := uc.Create(produtoDonoID, dto.CreateCategoriaRequest{Nome: "Temporária"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(produtoDonoID, created.ID))
	assert.NotContains(t, repo.categorias, created.ID)

	err = uc.Delete(produtoDonoID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
