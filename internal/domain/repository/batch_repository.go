package repository

import "github.com/tu-usuario/lacteos-pro/internal/domain/entity"

// BatchRepository puerto de persistencia para lotes de producción.
type BatchRepository interface {
	Create(b *entity.ProductionBatch) error
	GetByID(id string) (*entity.ProductionBatch, error)
	GetByBatchNumber(number string) (*entity.ProductionBatch, error)
	List(limit, offset int) ([]*entity.ProductionBatch, error)
	Update(b *entity.ProductionBatch) error
}
