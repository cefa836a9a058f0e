package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación sobre PostgreSQL. Necesita el pool (no un Querier)
// porque Create abre su propia transacción para receta + ingredientes.
type RecipeRepo struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository construye el adaptador.
func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepo {
	return &RecipeRepo{pool: pool}
}

// Create persiste la receta con todos sus ingredientes en una sola transacción.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO recipes (id, name, product_id, description, instructions, yield_quantity, yield_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		recipe.ID, recipe.Name, recipe.ProductID, recipe.Description, recipe.Instructions,
		recipe.YieldQuantity, recipe.YieldUnit, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert recipe: %w", err)
	}

	for _, ing := range recipe.Ingredients {
		_, err = tx.Exec(ctx, `
			INSERT INTO recipe_ingredients (id, recipe_id, ingredient_kind, raw_material_id, product_id, quantity, unit, notes, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			ing.ID, ing.RecipeID, ing.IngredientKind,
			nullIfEmpty(ing.RawMaterialID), nullIfEmpty(ing.ProductID),
			ing.Quantity, ing.Unit, ing.Notes, ing.Position,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una receta con sus ingredientes ordenados por posición.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	ctx := context.Background()
	var recipe entity.Recipe
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, product_id, description, instructions, yield_quantity, yield_unit, created_at, updated_at
		FROM recipes WHERE id = $1`, id,
	).Scan(
		&recipe.ID, &recipe.Name, &recipe.ProductID, &recipe.Description, &recipe.Instructions,
		&recipe.YieldQuantity, &recipe.YieldUnit, &recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	recipe.Ingredients, err = r.ingredients(ctx, id)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List lista recetas con paginación, cada una con sus ingredientes.
func (r *RecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, product_id, description, instructions, yield_quantity, yield_unit, created_at, updated_at
		FROM recipes ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var recipe entity.Recipe
		if err := rows.Scan(
			&recipe.ID, &recipe.Name, &recipe.ProductID, &recipe.Description, &recipe.Instructions,
			&recipe.YieldQuantity, &recipe.YieldUnit, &recipe.CreatedAt, &recipe.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, recipe := range list {
		recipe.Ingredients, err = r.ingredients(ctx, recipe.ID)
		if err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete elimina la receta; los ingredientes caen por ON DELETE CASCADE.
func (r *RecipeRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RecipeRepo) ingredients(ctx context.Context, recipeID string) ([]entity.RecipeIngredient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, recipe_id, ingredient_kind, raw_material_id, product_id, quantity, unit, notes, position
		FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY position`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()
	var list []entity.RecipeIngredient
	for rows.Next() {
		var ing entity.RecipeIngredient
		var rawMaterialID, productID *string
		if err := rows.Scan(
			&ing.ID, &ing.RecipeID, &ing.IngredientKind, &rawMaterialID, &productID,
			&ing.Quantity, &ing.Unit, &ing.Notes, &ing.Position,
		); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		if rawMaterialID != nil {
			ing.RawMaterialID = *rawMaterialID
		}
		if productID != nil {
			ing.ProductID = *productID
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}
