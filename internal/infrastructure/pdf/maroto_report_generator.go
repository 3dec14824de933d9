// Package pdf implementa a geração do relatório de estoque baixo em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título do relatório  │  Data/hora de geração        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Código | Produto | Categoria | Qtd | Mínimo         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de produtos abaixo do mínimo                  │
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

	"github.com/estoque-pro/estoque-api/internal/application/report"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateEstoqueBaixoPDF gera o PDF do relatório e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateEstoqueBaixoPDF(
	_ context.Context,
	produtos []*entity.Produto,
	geradoEm time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque Baixo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(geradoEm))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableProdutoRows(produtos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(produtos)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e data/hora de geração (dir).
func headerRow(geradoEm time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE ESTOQUE BAIXO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Produtos com quantidade abaixo do estoque mínimo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(geradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de produtos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Produto", 4, align.Left),
		h("Categoria", 3, align.Left),
		h("Qtd.", 1, align.Center),
		h("Mínimo", 2, align.Center),
	)
}

// tableProdutoRows: uma linha por produto, quantidade em destaque.
func tableProdutoRows(produtos []*entity.Produto) []core.Row {
	result := make([]core.Row, 0, len(produtos))
	for _, p := range produtos {
		categoria := ""
		if p.Categoria != nil {
			categoria = p.Categoria.Nome
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				p.Codigo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				p.Nome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				categoria,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: colorAlert},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", p.EstoqueMinimo),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// footerRow: total de produtos listados.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de produtos abaixo do estoque mínimo: %d", total),
			props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary},
		)),
	)
}
