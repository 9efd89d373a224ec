package relatorio

import (
	"context"

	"github.com/shopspring/decimal"
)

// ItemEstoque é uma linha do relatório de estoque, já com a categoria resolvida.
type ItemEstoque struct {
	Nome          string
	Categoria     string
	Quantidade    int64
	ValorUnitario decimal.Decimal
	ValorTotal    decimal.Decimal // quantidade * valor unitário
}

// RelatorioEstoque dados prontos para renderização.
type RelatorioEstoque struct {
	Usuario    string
	Itens      []ItemEstoque
	ValorTotal decimal.Decimal // soma das posições
}

// GeradorPDF renderiza o relatório de estoque e devolve os bytes do PDF.
type GeradorPDF interface {
	GerarRelatorioEstoque(ctx context.Context, rel *RelatorioEstoque) ([]byte, error)
}
