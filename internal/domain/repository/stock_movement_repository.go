package repository

import "github.com/tu-usuario/lacteos-pro/internal/domain/entity"

// StockMovementRepository puerto de persistencia para el historial de movimientos.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByItem(itemKind, itemID string, limit int) ([]*entity.StockMovement, error)
}
