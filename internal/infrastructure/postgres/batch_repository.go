package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, recipe_id, batch_number, planned_quantity, actual_quantity,
	status, start_date, end_date, supervisor_id, notes, created_at, updated_at`

// BatchRepo implementación sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote de producción.
func (r *BatchRepo) Create(b *entity.ProductionBatch) error {
	query := `
		INSERT INTO production_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.RecipeID, b.BatchNumber, b.PlannedQuantity, b.ActualQuantity,
		b.Status, b.StartDate, b.EndDate, nullIfEmpty(b.SupervisorID), b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert production batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches WHERE id = $1`
	return r.getOne(query, id)
}

// GetByBatchNumber obtiene un lote por su número.
func (r *BatchRepo) GetByBatchNumber(number string) (*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches WHERE batch_number = $1`
	return r.getOne(query, number)
}

// List lista lotes con paginación (más recientes primero).
func (r *BatchRepo) List(limit, offset int) ([]*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update actualiza estado, cantidad real y fechas del lote.
func (r *BatchRepo) Update(b *entity.ProductionBatch) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE production_batches
		SET status = $2, actual_quantity = $3, end_date = $4, notes = $5, updated_at = $6
		WHERE id = $1`,
		b.ID, b.Status, b.ActualQuantity, b.EndDate, b.Notes, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BatchRepo) getOne(query string, arg any) (*entity.ProductionBatch, error) {
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production batch: %w", err)
	}
	return b, nil
}

func scanBatch(row pgx.Row) (*entity.ProductionBatch, error) {
	var b entity.ProductionBatch
	var supervisorID *string
	err := row.Scan(
		&b.ID, &b.RecipeID, &b.BatchNumber, &b.PlannedQuantity, &b.ActualQuantity,
		&b.Status, &b.StartDate, &b.EndDate, &supervisorID, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supervisorID != nil {
		b.SupervisorID = *supervisorID
	}
	return &b, nil
}
