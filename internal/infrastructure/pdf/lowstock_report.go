// Package pdf implementa el reporte de reposición (productos en o bajo su
// stock mínimo) como PDF A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Reposición  │  Alcance + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sucursal | Producto | SKU | Stock | Mín | Sugerido   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL de referencias por reponer                            │
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

	"github.com/jhoicas/supermercado-api/internal/application/report"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 57}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ report.PDFGenerator = (*LowStockReportGenerator)(nil)

// LowStockReportGenerator implementa report.PDFGenerator usando Maroto v2.
type LowStockReportGenerator struct{}

// NewLowStockReportGenerator construye el generador.
func NewLowStockReportGenerator() *LowStockReportGenerator { return &LowStockReportGenerator{} }

// GenerateLowStockPDF genera el PDF y devuelve sus bytes.
func (g *LowStockReportGenerator) GenerateLowStockPDF(
	_ context.Context,
	generatedAt time.Time,
	scope string,
	items []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Reposición", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, scope))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range items {
		m.AddRows(itemRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y alcance + fecha (der).
func headerRow(generatedAt time.Time, scope string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Productos en o bajo su stock mínimo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(scope, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(3).Add(text.New("Sucursal", header)),
		col.New(3).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("SKU", header)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(1).Add(text.New("Mín", headerRight)),
		col.New(2).Add(text.New("Sugerido", headerRight)),
	)
}

func itemRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	right := props.Text{Size: 8, Top: 1, Align: align.Right}
	stockProps := right
	if p.Stock == 0 {
		stockProps = props.Text{Size: 8, Top: 1, Align: align.Right, Style: fontstyle.Bold, Color: colorAlert}
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(p.SupermarketName, cell)),
		col.New(3).Add(text.New(p.Name, cell)),
		col.New(2).Add(text.New(p.SKU, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.Stock), stockProps)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.MinStock), right)),
		col.New(2).Add(text.New(fmt.Sprintf("%d unidades", p.SuggestedReorder()), right)),
	)
}

func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d referencias por reponer", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}
