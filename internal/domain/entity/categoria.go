package entity

import "time"

// CorPadrao é a cor atribuída a uma categoria quando nenhuma é informada.
const CorPadrao = "#3B82F6"

// Categoria agrupa produtos de um usuário. A referência de Produto para Categoria é opcional.
type Categoria struct {
	ID        string
	Nome      string
	Descricao string
	Cor       string // tag de cor em hex para a UI
	UserID    string
	CriadoEm  time.Time
}
