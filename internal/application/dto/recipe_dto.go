package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
)

// CreateRecipeRequest entrada cruda del formulario de recetas.
type CreateRecipeRequest struct {
	Name          string                    `json:"name"`
	ProductID     string                    `json:"product_id"`
	Description   string                    `json:"description"`
	Instructions  string                    `json:"instructions"`
	YieldQuantity string                    `json:"yield_quantity"`
	YieldUnit     string                    `json:"yield_unit"`
	Ingredients   []CreateIngredientRequest `json:"ingredients"`
}

// CreateIngredientRequest entrada cruda de un ingrediente.
type CreateIngredientRequest struct {
	IngredientKind string `json:"ingredient_type"`
	RawMaterialID  string `json:"raw_material_id"`
	ProductID      string `json:"product_id"`
	Quantity       string `json:"quantity"`
	Unit           string `json:"unit"`
	Notes          string `json:"notes"`
}

// Draft convierte el request al borrador de formulario.
func (r CreateRecipeRequest) Draft() forms.RecipeDraft {
	ingredients := make([]forms.IngredientDraft, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, forms.IngredientDraft{
			IngredientKind: ing.IngredientKind,
			RawMaterialID:  ing.RawMaterialID,
			ProductID:      ing.ProductID,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
			Notes:          ing.Notes,
		})
	}
	return forms.RecipeDraft{
		Name:          r.Name,
		ProductID:     r.ProductID,
		Description:   r.Description,
		Instructions:  r.Instructions,
		YieldQuantity: r.YieldQuantity,
		YieldUnit:     r.YieldUnit,
		Ingredients:   ingredients,
	}
}

// IngredientResponse salida de un ingrediente de receta.
type IngredientResponse struct {
	ID             string          `json:"id"`
	IngredientKind string          `json:"ingredient_type"`
	RawMaterialID  string          `json:"raw_material_id,omitempty"`
	ProductID      string          `json:"product_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Notes          string          `json:"notes,omitempty"`
}

// RecipeResponse salida de una receta.
type RecipeResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	ProductID     string               `json:"product_id"`
	Description   string               `json:"description,omitempty"`
	Instructions  string               `json:"instructions,omitempty"`
	YieldQuantity decimal.Decimal      `json:"yield_quantity"`
	YieldUnit     string               `json:"yield_unit"`
	Ingredients   []IngredientResponse `json:"ingredients"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// RecipeListResponse lista paginada de recetas.
type RecipeListResponse struct {
	Items []RecipeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
