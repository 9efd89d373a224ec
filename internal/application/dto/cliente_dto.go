package dto

import "time"

// CreateClienteRequest entrada para criar um cliente.
type CreateClienteRequest struct {
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}

// UpdateClienteRequest entrada para atualização parcial: campos nil ficam inalterados.
type UpdateClienteRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email,omitempty"`
	Telefone string    `json:"telefone,omitempty"`
	Endereco string    `json:"endereco,omitempty"`
	UserID   string    `json:"user_id"`
	CriadoEm time.Time `json:"created_at"`
}
