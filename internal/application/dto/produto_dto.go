package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto. Quantidade inicial padrão: 0.
type CreateProdutoRequest struct {
	Nome        string          `json:"nome" validate:"required,min=1,max=200"`
	Valor       decimal.Decimal `json:"valor" validate:"required"`
	Quantidade  int64           `json:"quantidade" validate:"omitempty,min=0"`
	Descricao   string          `json:"descricao"`
	CategoriaID *string         `json:"categoria_id"`
}

// UpdateProdutoRequest entrada para atualização parcial: campos nil ficam inalterados
// (nunca anula um campo por omissão).
type UpdateProdutoRequest struct {
	Nome        *string          `json:"nome"`
	Valor       *decimal.Decimal `json:"valor"`
	Quantidade  *int64           `json:"quantidade"`
	Descricao   *string          `json:"descricao"`
	CategoriaID *string          `json:"categoria_id"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID          string          `json:"id"`
	Nome        string          `json:"nome"`
	Valor       decimal.Decimal `json:"valor"`
	Quantidade  int64           `json:"quantidade"`
	Descricao   string          `json:"descricao,omitempty"`
	CategoriaID *string         `json:"categoria_id,omitempty"`
	UserID      string          `json:"user_id"`
	CriadoEm    time.Time       `json:"created_at"`
}
