// Package pricing implementa el cálculo de precios derivados de los formularios
// de ítems (servicio de dominio, puro y sin estado).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
)

// Facts agrupa los precios de un ítem. Los campos nil significan "no informado".
// TTCPrice y ProfitMargin son derivados: se recalculan siempre que sus insumos
// estén presentes y pisan cualquier valor anterior.
type Facts struct {
	HTPrice       *decimal.Decimal // precio sin impuesto (HT)
	TaxRate       *decimal.Decimal // porcentaje 0..100
	TTCPrice      *decimal.Decimal // precio con impuesto (TTC), derivado
	CostPrice     *decimal.Decimal
	RetailPrice   *decimal.Decimal
	PurchasePrice *decimal.Decimal
	ProfitMargin  *decimal.Decimal // porcentaje, derivado
}

var oneHundred = decimal.NewFromInt(100)

// ComputeDerived recalcula los campos derivados según el tipo de ítem y devuelve
// una copia actualizada (nunca muta el argumento).
//
// Producto:     TTC = HT * (1 + taxRate/100); margen = (retail - cost)/cost * 100.
// Materia prima: TTC = purchase * (1 + taxRate/100); no se calcula margen.
//
// Ambos derivados se redondean a 2 decimales (half-up). El caso cost = 0 lo
// rechaza el validador de ítems antes de llegar aquí.
func ComputeDerived(facts Facts, itemKind string) Facts {
	out := facts

	base := facts.HTPrice
	if itemKind == catalog.ItemKindRawMaterial {
		base = facts.PurchasePrice
	}
	if base != nil && facts.TaxRate != nil {
		ttc := taxInclusive(*base, *facts.TaxRate)
		out.TTCPrice = &ttc
	}

	if itemKind == catalog.ItemKindProduct && facts.CostPrice != nil && facts.RetailPrice != nil && !facts.CostPrice.IsZero() {
		margin := profitMargin(*facts.CostPrice, *facts.RetailPrice)
		out.ProfitMargin = &margin
	}
	return out
}

// taxInclusive aplica el impuesto: base * (1 + rate/100), redondeado a 2 decimales.
func taxInclusive(base, rate decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(rate.Div(oneHundred))
	return base.Mul(factor).Round(2)
}

// profitMargin calcula (retail - cost)/cost * 100, redondeado a 2 decimales.
func profitMargin(cost, retail decimal.Decimal) decimal.Decimal {
	return retail.Sub(cost).Div(cost).Mul(oneHundred).Round(2)
}
