package relatorio

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/repository"
)

// UseCase gera o relatório de estoque (PDF) da partição do usuário.
type UseCase struct {
	userRepo      repository.UserRepository
	produtoRepo   repository.ProdutoRepository
	categoriaRepo repository.CategoriaRepository
	gerador       GeradorPDF
}

// NewUseCase constrói o caso de uso injetando as dependências.
func NewUseCase(
	userRepo repository.UserRepository,
	produtoRepo repository.ProdutoRepository,
	categoriaRepo repository.CategoriaRepository,
	gerador GeradorPDF,
) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		produtoRepo:   produtoRepo,
		categoriaRepo: categoriaRepo,
		gerador:       gerador,
	}
}

// GerarEstoque monta as linhas do relatório (produtos do usuário com nome da categoria e
// valor da posição) e delega a renderização ao gerador.
func (uc *UseCase) GerarEstoque(ctx context.Context, userID string) ([]byte, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNaoAutenticado
	}

	produtos, err := uc.produtoRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	categorias, err := uc.categoriaRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	nomeCategoria := make(map[string]string, len(categorias))
	for _, c := range categorias {
		nomeCategoria[c.ID] = c.Nome
	}

	rel := &RelatorioEstoque{Usuario: user.Username}
	for _, p := range produtos {
		categoria := ""
		if p.CategoriaID != nil {
			categoria = nomeCategoria[*p.CategoriaID]
		}
		valorTotal := p.Valor.Mul(decimal.NewFromInt(p.Quantidade))
		rel.Itens = append(rel.Itens, ItemEstoque{
			Nome:          p.Nome,
			Categoria:     categoria,
			Quantidade:    p.Quantidade,
			ValorUnitario: p.Valor,
			ValorTotal:    valorTotal,
		})
		rel.ValorTotal = rel.ValorTotal.Add(valorTotal)
	}

	return uc.gerador.GerarRelatorioEstoque(ctx, rel)
}
