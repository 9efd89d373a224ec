// Package pdf implementa a geração do relatório de estoque em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: NEXUS — Relatório de Estoque  │  Usuário + Data     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Categoria | Qtd | Valor Unit. | Posição   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total do estoque                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nexus-estoque/api/internal/application/relatorio"
)

var (
	corPrimaria = &props.Color{Red: 59, Green: 130, Blue: 246}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ptBR formata números no padrão brasileiro (1.234,56).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var _ relatorio.GeradorPDF = (*MarotoGerador)(nil)

// MarotoGerador implementa relatorio.GeradorPDF usando Maroto v2.
type MarotoGerador struct{}

// NewMarotoGerador constrói o gerador.
func NewMarotoGerador() *MarotoGerador { return &MarotoGerador{} }

// GerarRelatorioEstoque gera o PDF e devolve seus bytes.
func (g *MarotoGerador) GerarRelatorioEstoque(_ context.Context, rel *relatorio.RelatorioEstoque) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(rel))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))

	m.AddRows(tabelaHeaderRow())
	for _, r := range tabelaItemRows(rel.Itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totalRow(rel.ValorTotal))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// cabecalhoRow: título (esq) e usuário + data de emissão (dir).
func cabecalhoRow(rel *relatorio.RelatorioEstoque) core.Row {
	data := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("NEXUS — Relatório de Estoque", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Usuário: "+rel.Usuario, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: corCinza,
			}),
			text.New("Emitido em: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: corCinza,
			}),
		),
	)
}

// tabelaHeaderRow: cabeçalho da tabela de produtos.
func tabelaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 4, align.Left),
		h("Categoria", 3, align.Left),
		h("Qtd.", 1, align.Center),
		h("Valor Unit.", 2, align.Right),
		h("Posição", 2, align.Right),
	)
}

// tabelaItemRows: uma fila por produto.
func tabelaItemRows(itens []relatorio.ItemEstoque) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		categoria := it.Categoria
		if categoria == "" {
			categoria = "—"
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				it.Nome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				categoria,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatarMoeda(it.ValorUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatarMoeda(it.ValorTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: valor total do estoque, alinhado à direita.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("VALOR TOTAL DO ESTOQUE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(formatarMoeda(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Top: 2, Right: 1,
		})),
	)
}

// formatarMoeda formata um decimal como moeda brasileira (R$ 1.234,56).
func formatarMoeda(v decimal.Decimal) string {
	return ptBR.Sprintf("R$ %.2f", v.InexactFloat64())
}
