package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transação de estoque.
const (
	TipoEntrada = "entrada" // aumento de estoque
	TipoSaida   = "saida"   // baixa de estoque (venda)
)

// TipoValido retorna true se o tipo é entrada ou saida.
func TipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSaida
}

// Transacao é o registro imutável de um movimento de estoque. Nasce junto com a mutação
// de quantidade do produto (mesma unidade de trabalho) e só deixa de existir via estorno,
// que reverte exatamente o delta aplicado. Nunca é atualizada em vigor.
type Transacao struct {
	ID            string
	Tipo          string // entrada ou saida
	ProdutoID     string
	ClienteID     *string // opcional
	Quantidade    int64   // sempre > 0; o sinal vem do Tipo
	ValorUnitario decimal.Decimal
	ValorTotal    decimal.Decimal
	NumeroPedido  string
	Observacoes   string
	UserID        string
	CriadoEm      time.Time
}
