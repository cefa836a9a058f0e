package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial representa una materia prima del inventario (leche cruda, cuajo,
// fermentos, etc.). Stock se actualiza solo vía movimientos.
type RawMaterial struct {
	ID                string
	Name              string
	Description       string
	Unit              string // catalog.Unit*
	MinStockLevel     *decimal.Decimal
	MaxStockLevel     *decimal.Decimal
	PurchasePrice     decimal.Decimal // obligatorio para materias primas
	SupplierPrice     *decimal.Decimal
	TaxRate           *decimal.Decimal // porcentaje 0..100
	HTPrice           *decimal.Decimal
	TTCPrice          *decimal.Decimal // derivado
	Barcode           string
	ShelfLifeDays     *int
	StorageConditions string
	Stock             decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
