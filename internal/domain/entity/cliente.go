package entity

import "time"

// Cliente representa um cliente do usuário (contato opcional em vendas).
type Cliente struct {
	ID       string
	Nome     string
	Email    string
	Telefone string
	Endereco string
	UserID   string
	CriadoEm time.Time
}
