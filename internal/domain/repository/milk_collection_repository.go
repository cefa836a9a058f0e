package repository

import (
	"time"

	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
)

// MilkCollectionRepository puerto de persistencia para recolecciones de leche.
type MilkCollectionRepository interface {
	Create(mc *entity.MilkCollection) error
	// ListByRange devuelve las recolecciones en [from, to], opcionalmente filtradas por proveedor.
	ListByRange(from, to time.Time, supplierID string) ([]*entity.MilkCollection, error)
}
