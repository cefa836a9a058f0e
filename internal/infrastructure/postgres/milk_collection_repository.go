package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

var _ repository.MilkCollectionRepository = (*MilkCollectionRepo)(nil)

const collectionColumns = `id, supplier_id, collection_date, quantity, temperature,
	fat_content, density, acidity, notes, created_at, created_by`

// MilkCollectionRepo implementación sobre PostgreSQL (usable con pool o tx).
type MilkCollectionRepo struct {
	q Querier
}

// NewMilkCollectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMilkCollectionRepository(q Querier) *MilkCollectionRepo {
	return &MilkCollectionRepo{q: q}
}

// Create persiste una recolección de leche.
func (r *MilkCollectionRepo) Create(mc *entity.MilkCollection) error {
	query := `
		INSERT INTO milk_collections (` + collectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		mc.ID, mc.SupplierID, mc.CollectionDate, mc.Quantity, mc.Temperature,
		mc.FatContent, mc.Density, mc.Acidity, mc.Notes, mc.CreatedAt, nullIfEmpty(mc.CreatedBy),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert milk collection: %w", err)
	}
	return nil
}

// ListByRange devuelve las recolecciones en [from, to], opcionalmente filtradas por proveedor.
func (r *MilkCollectionRepo) ListByRange(from, to time.Time, supplierID string) ([]*entity.MilkCollection, error) {
	query := `
		SELECT ` + collectionColumns + `
		FROM milk_collections WHERE collection_date >= $1 AND collection_date <= $2`
	args := []any{from, to}
	if supplierID != "" {
		query += ` AND supplier_id = $3`
		args = append(args, supplierID)
	}
	query += ` ORDER BY collection_date`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list milk collections: %w", err)
	}
	defer rows.Close()
	var list []*entity.MilkCollection
	for rows.Next() {
		var mc entity.MilkCollection
		var createdBy *string
		if err := rows.Scan(
			&mc.ID, &mc.SupplierID, &mc.CollectionDate, &mc.Quantity, &mc.Temperature,
			&mc.FatContent, &mc.Density, &mc.Acidity, &mc.Notes, &mc.CreatedAt, &createdBy,
		); err != nil {
			return nil, fmt.Errorf("scan milk collection: %w", err)
		}
		if createdBy != nil {
			mc.CreatedBy = *createdBy
		}
		list = append(list, &mc)
	}
	return list, rows.Err()
}
