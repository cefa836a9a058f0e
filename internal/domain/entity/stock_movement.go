package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement representa un ajuste de stock (entrada o salida) contra una
// materia prima o un producto. Quantity siempre es positiva; la dirección la da
// Direction (catalog.DirectionIn/Out).
type StockMovement struct {
	ID             string
	ItemKind       string // catalog.ItemKindRawMaterial | catalog.ItemKindProduct
	ItemID         string
	Direction      string
	Quantity       decimal.Decimal
	MovementDate   time.Time
	BatchNumber    string
	UnitPrice      *decimal.Decimal // solo entradas
	ExpirationDate *time.Time       // solo entradas
	SupplierID     string           // solo materias primas
	ClientID       string           // solo productos
	Notes          string
	CreatedAt      time.Time
	CreatedBy      string
}
