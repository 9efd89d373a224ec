package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransacaoRequest entrada para registrar uma transação de estoque.
type CreateTransacaoRequest struct {
	Tipo          string          `json:"tipo" validate:"required,oneof=entrada saida"`
	ProdutoID     string          `json:"produto_id" validate:"required,uuid"`
	ClienteID     *string         `json:"cliente_id" validate:"omitempty,uuid"`
	Quantidade    int64           `json:"quantidade" validate:"required,gt=0"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required"`
	ValorTotal    decimal.Decimal `json:"valor_total" validate:"required"`
	NumeroPedido  string          `json:"numero_pedido"`
	Observacoes   string          `json:"observacoes"`
}

// TransacaoResponse saída de uma transação.
type TransacaoResponse struct {
	ID            string          `json:"id"`
	Tipo          string          `json:"tipo"`
	ProdutoID     string          `json:"produto_id"`
	ClienteID     *string         `json:"cliente_id,omitempty"`
	Quantidade    int64           `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	NumeroPedido  string          `json:"numero_pedido,omitempty"`
	Observacoes   string          `json:"observacoes,omitempty"`
	UserID        string          `json:"user_id"`
	CriadoEm      time.Time       `json:"created_at"`
}
