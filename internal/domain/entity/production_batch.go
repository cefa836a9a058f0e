package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionBatch representa una tanda de producción creada a partir de una receta.
type ProductionBatch struct {
	ID              string
	RecipeID        string
	BatchNumber     string // ej. B20240115-3842
	PlannedQuantity decimal.Decimal
	ActualQuantity  *decimal.Decimal // se informa al completar
	Status          string           // catalog.BatchStatus*
	StartDate       time.Time
	EndDate         *time.Time
	SupervisorID    string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
