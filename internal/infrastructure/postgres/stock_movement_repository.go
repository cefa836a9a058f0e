package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, item_kind, item_id, direction, quantity, movement_date,
	batch_number, unit_price, expiration_date, supplier_id, client_id, notes, created_at, created_by`

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemKind, m.ItemID, m.Direction, m.Quantity, m.MovementDate,
		nullIfEmpty(m.BatchNumber), m.UnitPrice, m.ExpirationDate,
		nullIfEmpty(m.SupplierID), nullIfEmpty(m.ClientID), m.Notes, m.CreatedAt, nullIfEmpty(m.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByItem lista los últimos movimientos de un ítem (más recientes primero).
func (r *StockMovementRepo) ListByItem(itemKind, itemID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE item_kind = $1 AND item_id = $2
		ORDER BY movement_date DESC, created_at DESC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, itemKind, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var batchNumber, supplierID, clientID, createdBy *string
		if err := rows.Scan(
			&m.ID, &m.ItemKind, &m.ItemID, &m.Direction, &m.Quantity, &m.MovementDate,
			&batchNumber, &m.UnitPrice, &m.ExpirationDate,
			&supplierID, &clientID, &m.Notes, &m.CreatedAt, &createdBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if batchNumber != nil {
			m.BatchNumber = *batchNumber
		}
		if supplierID != nil {
			m.SupplierID = *supplierID
		}
		if clientID != nil {
			m.ClientID = *clientID
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
