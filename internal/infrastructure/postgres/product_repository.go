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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, unit, product_type, min_stock_level, max_stock_level,
	wholesale_price, retail_price, tax_rate, ht_price, ttc_price, cost_price, profit_margin,
	barcode, shelf_life_days, storage_conditions, stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Stock inicia en 0.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Unit, p.ProductType, p.MinStockLevel, p.MaxStockLevel,
		p.WholesalePrice, p.RetailPrice, p.TaxRate, p.HTPrice, p.TTCPrice, p.CostPrice, p.ProfitMargin,
		nullIfEmpty(p.Barcode), p.ShelfLifeDays, p.StorageConditions, p.Stock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateLevels actualiza los niveles mínimo/máximo (nil limpia el nivel).
func (r *ProductRepo) UpdateLevels(id string, minLevel, maxLevel *decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET min_stock_level = $2, max_stock_level = $3, updated_at = now() WHERE id = $1`,
		id, minLevel, maxLevel,
	)
	if err != nil {
		return fmt.Errorf("update product levels: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetStockForUpdate bloquea la fila (SELECT FOR UPDATE) y devuelve el stock actual.
func (r *ProductRepo) GetStockForUpdate(id string) (decimal.Decimal, error) {
	var stock decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM products WHERE id = $1 FOR UPDATE`, id,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("get product stock for update: %w", err)
	}
	return stock, nil
}

// UpdateStock fija el stock del producto (solo dentro del motor de movimientos).
func (r *ProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// UpdateCostPrice actualiza el costo promedio del producto.
func (r *ProductRepo) UpdateCostPrice(id string, cost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET cost_price = $2, updated_at = now() WHERE id = $1`,
		id, cost,
	)
	if err != nil {
		return fmt.Errorf("update product cost price: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var barcode *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Unit, &p.ProductType, &p.MinStockLevel, &p.MaxStockLevel,
		&p.WholesalePrice, &p.RetailPrice, &p.TaxRate, &p.HTPrice, &p.TTCPrice, &p.CostPrice, &p.ProfitMargin,
		&barcode, &p.ShelfLifeDays, &p.StorageConditions, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if barcode != nil {
		p.Barcode = *barcode
	}
	return &p, nil
}
