package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos terminados.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	UpdateLevels(id string, minLevel, maxLevel *decimal.Decimal) error

	// GetStockForUpdate bloquea la fila (SELECT FOR UPDATE) y devuelve el stock actual.
	GetStockForUpdate(id string) (decimal.Decimal, error)
	UpdateStock(id string, stock decimal.Decimal) error
	UpdateCostPrice(id string, cost decimal.Decimal) error
}
