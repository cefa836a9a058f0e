package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
)

// RawMaterialRepository puerto de persistencia para materias primas.
type RawMaterialRepository interface {
	Create(rm *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	List(limit, offset int) ([]*entity.RawMaterial, error)
	UpdateLevels(id string, minLevel, maxLevel *decimal.Decimal) error

	// GetStockForUpdate bloquea la fila (SELECT FOR UPDATE) y devuelve el stock actual.
	GetStockForUpdate(id string) (decimal.Decimal, error)
	UpdateStock(id string, stock decimal.Decimal) error
	UpdatePurchasePrice(id string, price decimal.Decimal) error
}
