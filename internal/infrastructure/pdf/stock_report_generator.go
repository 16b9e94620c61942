// Package pdf renderiza el reporte de stock actual como PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Precio | Stock | Mínimo             │
//	│  ──────────────────────────────────────────────────────────  │
//	│  PIE: total de productos listados                            │
//	└──────────────────────────────────────────────────────────────┘
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

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/reports"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ reports.StockReportGenerator = (*MarotoStockReportGenerator)(nil)

// MarotoStockReportGenerator implementa reports.StockReportGenerator usando Maroto v2.
type MarotoStockReportGenerator struct{}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(
	_ context.Context,
	products []*entity.Product,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock actual", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de stock: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de stock actual", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 9, Style: fontstyle.Bold, Align: alignment, Color: colorWhite, Top: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(7).Add(
		header(3, "SKU", align.Left),
		header(4, "Producto", align.Left),
		header(2, "Precio", align.Right),
		header(2, "Stock", align.Right),
		header(1, "Mín.", align.Right),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := func(size int, value string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: alignment, Top: 1}))
	}
	return row.New(6).Add(
		cell(3, p.SKU, align.Left),
		cell(4, p.Name, align.Left),
		cell(2, p.Price.StringFixed(2), align.Right),
		cell(2, fmt.Sprintf("%d", p.CurrentQuantity), align.Right),
		cell(1, fmt.Sprintf("%d", p.MinimumQuantity), align.Right),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d productos listados", total), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
	)
}
