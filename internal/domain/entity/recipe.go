package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe define cómo se produce un producto: rendimiento esperado y lista
// ordenada de ingredientes. Una receta válida tiene al menos un ingrediente.
type Recipe struct {
	ID            string
	Name          string
	ProductID     string // producto objetivo
	Description   string
	Instructions  string
	YieldQuantity decimal.Decimal // > 0
	YieldUnit     string
	Ingredients   []RecipeIngredient
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecipeIngredient es un componente de la receta. Según IngredientKind se llena
// exactamente una de las dos referencias (nunca ambas).
type RecipeIngredient struct {
	ID             string
	RecipeID       string
	IngredientKind string // catalog.ItemKindRawMaterial | catalog.ItemKindProduct
	RawMaterialID  string // solo si IngredientKind = raw_material
	ProductID      string // solo si IngredientKind = product
	Quantity       decimal.Decimal // > 0
	Unit           string
	Notes          string
	Position       int // orden dentro de la receta
}
