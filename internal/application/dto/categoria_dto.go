package dto

import "time"

// CreateCategoriaRequest entrada para criar uma categoria.
type CreateCategoriaRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=200"`
	Descricao string `json:"descricao" validate:"omitempty"`
	Cor       string `json:"cor" validate:"omitempty,hexcolor"`
}

// UpdateCategoriaRequest entrada para atualização parcial: campos nil ficam inalterados.
type UpdateCategoriaRequest struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
	Cor       *string `json:"cor"`
}

// CategoriaResponse saída de uma categoria.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao,omitempty"`
	Cor       string    `json:"cor"`
	UserID    string    `json:"user_id"`
	CriadoEm  time.Time `json:"created_at"`
}
