package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MilkCollection registra una recolección de leche de un proveedor, con sus
// parámetros de calidad medidos en recepción.
type MilkCollection struct {
	ID             string
	SupplierID     string
	CollectionDate time.Time
	Quantity       decimal.Decimal // litros, > 0
	Temperature    *decimal.Decimal
	FatContent     *decimal.Decimal // porcentaje
	Density        *decimal.Decimal
	Acidity        *decimal.Decimal
	Notes          string
	CreatedAt      time.Time
	CreatedBy      string
}
