package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

const rawMaterialColumns = `id, name, description, unit, min_stock_level, max_stock_level,
	purchase_price, supplier_price, tax_rate, ht_price, ttc_price,
	barcode, shelf_life_days, storage_conditions, stock, created_at, updated_at`

// RawMaterialRepo implementación del puerto RawMaterialRepository sobre PostgreSQL (usable con pool o tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// Create persiste una nueva materia prima. Stock inicia en 0.
func (r *RawMaterialRepo) Create(rm *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (` + rawMaterialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		rm.ID, rm.Name, rm.Description, rm.Unit, rm.MinStockLevel, rm.MaxStockLevel,
		rm.PurchasePrice, rm.SupplierPrice, rm.TaxRate, rm.HTPrice, rm.TTCPrice,
		nullIfEmpty(rm.Barcode), rm.ShelfLifeDays, rm.StorageConditions, rm.Stock, rm.CreatedAt, rm.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1`
	rm, err := scanRawMaterial(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return rm, nil
}

// List lista materias primas con paginación.
func (r *RawMaterialRepo) List(limit, offset int) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		rm, err := scanRawMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, rm)
	}
	return list, rows.Err()
}

// UpdateLevels actualiza los niveles mínimo/máximo (nil limpia el nivel).
func (r *RawMaterialRepo) UpdateLevels(id string, minLevel, maxLevel *decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE raw_materials SET min_stock_level = $2, max_stock_level = $3, updated_at = now() WHERE id = $1`,
		id, minLevel, maxLevel,
	)
	if err != nil {
		return fmt.Errorf("update raw material levels: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetStockForUpdate bloquea la fila (SELECT FOR UPDATE) y devuelve el stock actual.
func (r *RawMaterialRepo) GetStockForUpdate(id string) (decimal.Decimal, error) {
	var stock decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM raw_materials WHERE id = $1 FOR UPDATE`, id,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("get raw material stock for update: %w", err)
	}
	return stock, nil
}

// UpdateStock fija el stock de la materia prima (solo dentro del motor de movimientos).
func (r *RawMaterialRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE raw_materials SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update raw material stock: %w", err)
	}
	return nil
}

// UpdatePurchasePrice actualiza el precio de compra promedio.
func (r *RawMaterialRepo) UpdatePurchasePrice(id string, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE raw_materials SET purchase_price = $2, updated_at = now() WHERE id = $1`,
		id, price,
	)
	if err != nil {
		return fmt.Errorf("update raw material purchase price: %w", err)
	}
	return nil
}

func scanRawMaterial(row pgx.Row) (*entity.RawMaterial, error) {
	var rm entity.RawMaterial
	var barcode *string
	err := row.Scan(
		&rm.ID, &rm.Name, &rm.Description, &rm.Unit, &rm.MinStockLevel, &rm.MaxStockLevel,
		&rm.PurchasePrice, &rm.SupplierPrice, &rm.TaxRate, &rm.HTPrice, &rm.TTCPrice,
		&barcode, &rm.ShelfLifeDays, &rm.StorageConditions, &rm.Stock, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if barcode != nil {
		rm.Barcode = *barcode
	}
	return &rm, nil
}

// nullIfEmpty mapea string vacío a NULL (columnas únicas opcionales como barcode).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
