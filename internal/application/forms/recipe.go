package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
)

// RecipeDraft es el borrador crudo del formulario de recetas.
type RecipeDraft struct {
	Name          string
	ProductID     string // producto objetivo
	Description   string
	Instructions  string
	YieldQuantity string
	YieldUnit     string
	Ingredients   []IngredientDraft
}

// IngredientDraft es el borrador crudo de un ingrediente en el sub-formulario.
type IngredientDraft struct {
	IngredientKind string // catalog.ItemKindRawMaterial | catalog.ItemKindProduct
	RawMaterialID  string
	ProductID      string
	Quantity       string
	Unit           string
	Notes          string
}

// ValidatedRecipe payload tipado de una receta lista para persistir.
type ValidatedRecipe struct {
	Name          string                `json:"name"`
	ProductID     string                `json:"product_id"`
	Description   string                `json:"description,omitempty"`
	Instructions  string                `json:"instructions,omitempty"`
	YieldQuantity decimal.Decimal       `json:"yield_quantity"`
	YieldUnit     string                `json:"yield_unit"`
	Ingredients   []ValidatedIngredient `json:"ingredients"`
}

// ValidatedIngredient conserva solo la referencia que corresponde a su tipo;
// la otra nunca se llena, así no existen ingredientes con doble referencia.
type ValidatedIngredient struct {
	IngredientKind string          `json:"ingredient_type"`
	RawMaterialID  string          `json:"raw_material_id,omitempty"`
	ProductID      string          `json:"product_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Notes          string          `json:"notes,omitempty"`
}

// ValidateIngredient valida el borrador de un ingrediente. Cantidad ausente o
// <= 0 es MISSING_FIELD; falta de la referencia de su tipo es MISSING_REFERENCE.
func ValidateIngredient(draft IngredientDraft) (*ValidatedIngredient, FieldErrors) {
	errs := FieldErrors{}

	if !catalog.IsValidItemKind(draft.IngredientKind) {
		errs.add("ingredient_type", CodeMissingField, "tipo de ingrediente inválido")
		return nil, errs
	}
	qty := requiredQuantityField(errs, "quantity", draft.Quantity)
	if draft.Unit != "" && !catalog.IsValidUnit(draft.Unit) {
		errs.add("unit", CodeMissingField, "unidad fuera del catálogo")
	}

	out := &ValidatedIngredient{
		IngredientKind: draft.IngredientKind,
		Unit:           draft.Unit,
		Notes:          strings.TrimSpace(draft.Notes),
	}
	// Solo se retiene la referencia que coincide con el tipo declarado.
	switch draft.IngredientKind {
	case catalog.ItemKindRawMaterial:
		if strings.TrimSpace(draft.RawMaterialID) == "" {
			errs.add("raw_material_id", CodeMissingReference, "la materia prima es requerida")
		}
		out.RawMaterialID = strings.TrimSpace(draft.RawMaterialID)
	case catalog.ItemKindProduct:
		if strings.TrimSpace(draft.ProductID) == "" {
			errs.add("product_id", CodeMissingReference, "el producto es requerido")
		}
		out.ProductID = strings.TrimSpace(draft.ProductID)
	}

	if len(errs) > 0 {
		return nil, errs.orNil()
	}
	out.Quantity = *qty
	return out, nil
}

// ValidateRecipeDraft valida la receta completa al momento del envío.
func ValidateRecipeDraft(draft RecipeDraft) (*ValidatedRecipe, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(draft.Name) == "" {
		errs.add("name", CodeMissingField, "el nombre de la receta es requerido")
	}
	if strings.TrimSpace(draft.ProductID) == "" {
		errs.add("product_id", CodeMissingField, "el producto es requerido")
	}
	yieldQty := requiredQuantityField(errs, "yield_quantity", draft.YieldQuantity)
	if draft.YieldUnit != "" && !catalog.IsValidUnit(draft.YieldUnit) {
		errs.add("yield_unit", CodeMissingField, "unidad fuera del catálogo")
	}
	if len(draft.Ingredients) == 0 {
		errs.add("ingredients", CodeEmptyComposition, "la receta necesita al menos un ingrediente")
	}

	ingredients := make([]ValidatedIngredient, 0, len(draft.Ingredients))
	for _, ing := range draft.Ingredients {
		v, ingErrs := ValidateIngredient(ing)
		if ingErrs != nil {
			// La composición se arma ingrediente por ingrediente con
			// AddIngredient, así que aquí basta con señalar la lista.
			errs.add("ingredients", CodeMissingField, "hay ingredientes inválidos en la lista")
			continue
		}
		ingredients = append(ingredients, *v)
	}

	if len(errs) > 0 {
		return nil, errs.orNil()
	}
	return &ValidatedRecipe{
		Name:          strings.TrimSpace(draft.Name),
		ProductID:     strings.TrimSpace(draft.ProductID),
		Description:   strings.TrimSpace(draft.Description),
		Instructions:  strings.TrimSpace(draft.Instructions),
		YieldQuantity: *yieldQty,
		YieldUnit:     draft.YieldUnit,
		Ingredients:   ingredients,
	}, nil
}

// RecipeComposer mantiene el estado de composición de una receta mientras el
// usuario agrega y quita ingredientes. Agregar es todo-o-nada: un ingrediente
// inválido nunca entra a la lista y los campos de captura solo se limpian tras
// un alta exitosa. El error de composición vacía se afirma únicamente al enviar
// y se limpia en cuanto existe al menos un ingrediente; quitar el último no lo
// re-dispara hasta el siguiente intento de envío.
type RecipeComposer struct {
	draft      RecipeDraft
	entry      IngredientDraft
	submitErrs FieldErrors
}

// NewRecipeComposer crea el compositor con el borrador base del formulario.
func NewRecipeComposer(draft RecipeDraft) *RecipeComposer {
	return &RecipeComposer{draft: draft}
}

// SetEntry actualiza los campos del ingrediente en captura.
func (c *RecipeComposer) SetEntry(entry IngredientDraft) {
	c.entry = entry
}

// AddIngredient valida el ingrediente en captura; si es válido lo agrega a la
// lista y resetea la captura. Si no, devuelve los errores y no toca la lista.
func (c *RecipeComposer) AddIngredient() FieldErrors {
	v, errs := ValidateIngredient(c.entry)
	if errs != nil {
		return errs
	}
	ing := IngredientDraft{
		IngredientKind: v.IngredientKind,
		RawMaterialID:  v.RawMaterialID,
		ProductID:      v.ProductID,
		Quantity:       v.Quantity.String(),
		Unit:           v.Unit,
		Notes:          v.Notes,
	}
	c.draft.Ingredients = append(c.draft.Ingredients, ing)
	c.entry = IngredientDraft{}
	// Con un ingrediente en la lista el error de composición vacía deja de aplicar.
	if _, ok := c.submitErrs["ingredients"]; ok {
		delete(c.submitErrs, "ingredients")
	}
	return nil
}

// RemoveIngredient quita el ingrediente en la posición dada. No re-afirma el
// error de composición vacía: eso ocurre recién en el próximo Submit.
func (c *RecipeComposer) RemoveIngredient(index int) {
	if index < 0 || index >= len(c.draft.Ingredients) {
		return
	}
	c.draft.Ingredients = append(c.draft.Ingredients[:index], c.draft.Ingredients[index+1:]...)
}

// Ingredients devuelve la lista actual de ingredientes del borrador.
func (c *RecipeComposer) Ingredients() []IngredientDraft {
	return c.draft.Ingredients
}

// Errors devuelve los errores del último intento de envío.
func (c *RecipeComposer) Errors() FieldErrors {
	return c.submitErrs.orNil()
}

// Submit valida la receta completa y recuerda los errores para el formulario.
func (c *RecipeComposer) Submit() (*ValidatedRecipe, FieldErrors) {
	v, errs := ValidateRecipeDraft(c.draft)
	c.submitErrs = errs
	return v, errs
}
