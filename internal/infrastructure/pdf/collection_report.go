// Package pdf genera el reporte de recolecciones de leche en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Planta + título del reporte │ Rango de fechas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Proveedor | Litros | Temp | Grasa | Acidez   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE LITROS RECIBIDOS                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/lacteos-pro/internal/application/usecase"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
)

var _ usecase.CollectionReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.CollectionReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	PlantName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(plantName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{PlantName: plantName}
}

// CollectionsReport genera el PDF del rango y devuelve sus bytes.
func (g *MarotoReportGenerator) CollectionsReport(
	items []*entity.MilkCollection,
	from, to time.Time,
	total decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Recolección de Leche", true).
		WithAuthor(g.PlantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.PlantName, from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total, len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: planta + título (izq) y rango de fechas (der).
func headerRow(plantName string, from, to time.Time) core.Row {
	rango := fmt.Sprintf("%s — %s", from.Format("02/01/2006"), to.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(7).Add(
			text.New(plantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de recolección de leche", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de recolecciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Proveedor", 4, align.Left),
		h("Litros", 2, align.Right),
		h("Temp °C", 1, align.Right),
		h("Grasa %", 1, align.Right),
		h("Densidad", 1, align.Right),
		h("Acidez", 1, align.Right),
	)
}

// tableRows: una fila por recolección.
func tableRows(items []*entity.MilkCollection) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for _, mc := range items {
		result = append(result, row.New(6).Add(
			cell(mc.CollectionDate.Format("02/01/2006"), 2, align.Left),
			cell(mc.SupplierID, 4, align.Left),
			cell(mc.Quantity.StringFixed(1), 2, align.Right),
			cell(optionalFixed(mc.Temperature, 1), 1, align.Right),
			cell(optionalFixed(mc.FatContent, 1), 1, align.Right),
			cell(optionalFixed(mc.Density, 3), 1, align.Right),
			cell(optionalFixed(mc.Acidity, 1), 1, align.Right),
		))
	}
	return result
}

// totalRow: total de litros recibidos en el período.
func totalRow(total decimal.Decimal, count int) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("%d recolecciones registradas", count),
			props.Text{Size: 8, Color: colorGray, Top: 3},
		)),
		col.New(4).Add(text.New("TOTAL LITROS RECIBIDOS:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(total.StringFixed(1), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func optionalFixed(d *decimal.Decimal, places int32) string {
	if d == nil {
		return "—"
	}
	return d.StringFixed(places)
}
