package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado (queso, yogurt, leche pasteurizada...).
// TTCPrice y ProfitMargin son derivados por el calculador de precios; Stock se
// actualiza solo vía movimientos y producción.
type Product struct {
	ID                string
	Name              string
	Description       string
	Unit              string // catalog.Unit*
	ProductType       string // catalog.ProductType*
	MinStockLevel     *decimal.Decimal
	MaxStockLevel     *decimal.Decimal
	WholesalePrice    *decimal.Decimal
	RetailPrice       decimal.Decimal // obligatorio para productos
	TaxRate           *decimal.Decimal
	HTPrice           *decimal.Decimal
	TTCPrice          *decimal.Decimal // derivado
	CostPrice         *decimal.Decimal // si se informa, > 0 (divisor del margen)
	ProfitMargin      *decimal.Decimal // derivado
	Barcode           string
	ShelfLifeDays     *int
	StorageConditions string
	Stock             decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
