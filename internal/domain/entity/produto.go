package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do estoque de um usuário.
// Quantidade é um contador inteiro não negativo: só muda via transações (entrada/saída)
// ou atualização direta pelo dono; uma saída nunca pode deixá-la negativa.
type Produto struct {
	ID          string
	Nome        string
	Valor       decimal.Decimal // valor unitário de venda
	Quantidade  int64
	Descricao   string
	CategoriaID *string // opcional
	UserID      string
	CriadoEm    time.Time
}
