package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
	"github.com/tu-usuario/lacteos-pro/internal/domain/pricing"
)

func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// TTC (precio con impuesto)
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDerived_ProductoTTCDesdeHT(t *testing.T) {
	facts := pricing.Facts{
		HTPrice: dec(t, "100"),
		TaxRate: dec(t, "19"),
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindProduct)

	require.NotNil(t, out.TTCPrice)
	assert.True(t, out.TTCPrice.Equal(decimal.RequireFromString("119.00")),
		"TTC = 100 * 1.19 = 119, got %s", out.TTCPrice)
}

func TestComputeDerived_MateriaPrimaTTCDesdePrecioCompra(t *testing.T) {
	// Para materias primas la base del impuesto es el precio de compra, no HT.
	facts := pricing.Facts{
		PurchasePrice: dec(t, "1800"),
		TaxRate:       dec(t, "5"),
		HTPrice:       dec(t, "9999"), // se ignora para raw_material
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindRawMaterial)

	require.NotNil(t, out.TTCPrice)
	assert.True(t, out.TTCPrice.Equal(decimal.RequireFromString("1890.00")),
		"TTC = 1800 * 1.05 = 1890, got %s", out.TTCPrice)
}

func TestComputeDerived_TTCRedondeaADosDecimales(t *testing.T) {
	facts := pricing.Facts{
		HTPrice: dec(t, "10.99"),
		TaxRate: dec(t, "19"),
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindProduct)

	require.NotNil(t, out.TTCPrice)
	// 10.99 * 1.19 = 13.0781 → 13.08
	assert.True(t, out.TTCPrice.Equal(decimal.RequireFromString("13.08")),
		"got %s", out.TTCPrice)
}

func TestComputeDerived_SinInsumosNoDeriva(t *testing.T) {
	// Sin tasa de impuesto no hay TTC; sin costo o retail no hay margen.
	out := pricing.ComputeDerived(pricing.Facts{HTPrice: dec(t, "100")}, catalog.ItemKindProduct)
	assert.Nil(t, out.TTCPrice)
	assert.Nil(t, out.ProfitMargin)
}

// ──────────────────────────────────────────────────────────────────────────────
// Margen de ganancia
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDerived_MargenDeGanancia(t *testing.T) {
	facts := pricing.Facts{
		CostPrice:   dec(t, "80"),
		RetailPrice: dec(t, "100"),
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindProduct)

	require.NotNil(t, out.ProfitMargin)
	// (100 - 80) / 80 * 100 = 25
	assert.True(t, out.ProfitMargin.Equal(decimal.RequireFromString("25.00")),
		"got %s", out.ProfitMargin)
}

func TestComputeDerived_MargenRedondeaADosDecimales(t *testing.T) {
	facts := pricing.Facts{
		CostPrice:   dec(t, "3"),
		RetailPrice: dec(t, "4"),
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindProduct)

	require.NotNil(t, out.ProfitMargin)
	// (4-3)/3*100 = 33.333... → 33.33
	assert.True(t, out.ProfitMargin.Equal(decimal.RequireFromString("33.33")),
		"got %s", out.ProfitMargin)
}

func TestComputeDerived_MargenNegativoPermitido(t *testing.T) {
	// Vender por debajo del costo es un dato válido, no un error.
	facts := pricing.Facts{
		CostPrice:   dec(t, "100"),
		RetailPrice: dec(t, "90"),
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindProduct)

	require.NotNil(t, out.ProfitMargin)
	assert.True(t, out.ProfitMargin.Equal(decimal.RequireFromString("-10.00")),
		"got %s", out.ProfitMargin)
}

func TestComputeDerived_MateriaPrimaNoCalculaMargen(t *testing.T) {
	facts := pricing.Facts{
		CostPrice:     dec(t, "80"),
		RetailPrice:   dec(t, "100"),
		PurchasePrice: dec(t, "50"),
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindRawMaterial)
	assert.Nil(t, out.ProfitMargin, "las materias primas no tienen margen de venta")
}

func TestComputeDerived_CostoCeroNoDeriva(t *testing.T) {
	zero := decimal.Zero
	facts := pricing.Facts{
		CostPrice:   &zero,
		RetailPrice: dec(t, "100"),
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindProduct)
	assert.Nil(t, out.ProfitMargin, "costo cero no debe dividir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades: pureza e idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDerived_NoMutaElArgumento(t *testing.T) {
	facts := pricing.Facts{
		HTPrice:     dec(t, "100"),
		TaxRate:     dec(t, "19"),
		CostPrice:   dec(t, "80"),
		RetailPrice: dec(t, "100"),
	}
	_ = pricing.ComputeDerived(facts, catalog.ItemKindProduct)

	assert.Nil(t, facts.TTCPrice, "el argumento no debe mutarse")
	assert.Nil(t, facts.ProfitMargin, "el argumento no debe mutarse")
}

func TestComputeDerived_Idempotente(t *testing.T) {
	facts := pricing.Facts{
		HTPrice:     dec(t, "100"),
		TaxRate:     dec(t, "19"),
		CostPrice:   dec(t, "80"),
		RetailPrice: dec(t, "100"),
	}
	once := pricing.ComputeDerived(facts, catalog.ItemKindProduct)
	twice := pricing.ComputeDerived(once, catalog.ItemKindProduct)

	assert.True(t, once.TTCPrice.Equal(*twice.TTCPrice))
	assert.True(t, once.ProfitMargin.Equal(*twice.ProfitMargin))
}

func TestComputeDerived_PisaDerivadosAnteriores(t *testing.T) {
	// Un TTC viejo (stale) se recalcula siempre que los insumos estén presentes.
	facts := pricing.Facts{
		HTPrice:  dec(t, "100"),
		TaxRate:  dec(t, "19"),
		TTCPrice: dec(t, "1.00"), // valor viejo incorrecto
	}
	out := pricing.ComputeDerived(facts, catalog.ItemKindProduct)

	require.NotNil(t, out.TTCPrice)
	assert.True(t, out.TTCPrice.Equal(decimal.RequireFromString("119.00")),
		"el derivado viejo debe pisarse, got %s", out.TTCPrice)
}
