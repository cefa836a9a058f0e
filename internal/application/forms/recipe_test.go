package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
)

func milkIngredient() forms.IngredientDraft {
	return forms.IngredientDraft{
		IngredientKind: catalog.ItemKindRawMaterial,
		RawMaterialID:  "rm-leche",
		Quantity:       "10",
		Unit:           catalog.UnitL,
	}
}

func cheeseRecipeDraft() forms.RecipeDraft {
	return forms.RecipeDraft{
		Name:          "Queso campesino x kg",
		ProductID:     "prod-queso",
		YieldQuantity: "1",
		YieldUnit:     catalog.UnitKg,
		Ingredients:   []forms.IngredientDraft{milkIngredient()},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateIngredient
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateIngredient_Valido(t *testing.T) {
	v, errs := forms.ValidateIngredient(milkIngredient())
	require.Nil(t, errs)
	assert.Equal(t, "rm-leche", v.RawMaterialID)
	assert.Empty(t, v.ProductID, "solo se retiene la referencia del tipo declarado")
}

func TestValidateIngredient_SinReferenciaDeMateriaPrima(t *testing.T) {
	ing := milkIngredient()
	ing.RawMaterialID = ""
	_, errs := forms.ValidateIngredient(ing)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingReference, errs["raw_material_id"].Code)
}

func TestValidateIngredient_SinReferenciaDeProducto(t *testing.T) {
	ing := forms.IngredientDraft{
		IngredientKind: catalog.ItemKindProduct,
		Quantity:       "2",
	}
	_, errs := forms.ValidateIngredient(ing)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingReference, errs["product_id"].Code)
}

func TestValidateIngredient_ReferenciaDelOtroTipoNoSirve(t *testing.T) {
	// Un ingrediente de tipo producto con solo raw_material_id sigue incompleto.
	ing := forms.IngredientDraft{
		IngredientKind: catalog.ItemKindProduct,
		RawMaterialID:  "rm-leche",
		Quantity:       "2",
	}
	_, errs := forms.ValidateIngredient(ing)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingReference, errs["product_id"].Code)
}

func TestValidateIngredient_CantidadAusente(t *testing.T) {
	ing := milkIngredient()
	ing.Quantity = ""
	_, errs := forms.ValidateIngredient(ing)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingField, errs["quantity"].Code)
}

func TestValidateIngredient_CantidadCero(t *testing.T) {
	ing := milkIngredient()
	ing.Quantity = "0"
	_, errs := forms.ValidateIngredient(ing)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingField, errs["quantity"].Code)
}

func TestValidateIngredient_CantidadBasura(t *testing.T) {
	ing := milkIngredient()
	ing.Quantity = "mucha"
	_, errs := forms.ValidateIngredient(ing)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeInvalidNumber, errs["quantity"].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateRecipeDraft
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateRecipeDraft_Valida(t *testing.T) {
	v, errs := forms.ValidateRecipeDraft(cheeseRecipeDraft())
	require.Nil(t, errs)
	require.Len(t, v.Ingredients, 1)
	assert.Equal(t, "rm-leche", v.Ingredients[0].RawMaterialID)
}

func TestValidateRecipeDraft_SinIngredientes(t *testing.T) {
	draft := cheeseRecipeDraft()
	draft.Ingredients = nil
	_, errs := forms.ValidateRecipeDraft(draft)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeEmptyComposition, errs["ingredients"].Code)
}

func TestValidateRecipeDraft_SinProducto(t *testing.T) {
	draft := cheeseRecipeDraft()
	draft.ProductID = ""
	_, errs := forms.ValidateRecipeDraft(draft)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingField, errs["product_id"].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecipeComposer: alta todo-o-nada y ciclo de vida del error de composición
// ──────────────────────────────────────────────────────────────────────────────

func TestRecipeComposer_IngredienteInvalidoNoEntraALaLista(t *testing.T) {
	c := forms.NewRecipeComposer(forms.RecipeDraft{})
	bad := milkIngredient()
	bad.Quantity = "0"
	c.SetEntry(bad)

	errs := c.AddIngredient()
	require.NotNil(t, errs)
	assert.Empty(t, c.Ingredients(), "un ingrediente inválido nunca entra a la lista")
}

func TestRecipeComposer_AltaExitosaLimpiaCaptura(t *testing.T) {
	c := forms.NewRecipeComposer(forms.RecipeDraft{})
	c.SetEntry(milkIngredient())
	require.Nil(t, c.AddIngredient())
	require.Len(t, c.Ingredients(), 1)

	// La captura quedó vacía: repetir el alta debe fallar por cantidad ausente.
	errs := c.AddIngredient()
	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingField, errs["quantity"].Code)
	assert.Len(t, c.Ingredients(), 1)
}

func TestRecipeComposer_ErrorDeComposicionSoloAlEnviar(t *testing.T) {
	draft := cheeseRecipeDraft()
	draft.Ingredients = nil
	c := forms.NewRecipeComposer(draft)

	// Antes del envío no hay errores.
	assert.Nil(t, c.Errors())

	_, errs := c.Submit()
	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeEmptyComposition, errs["ingredients"].Code)
	assert.Equal(t, forms.CodeEmptyComposition, c.Errors()["ingredients"].Code)

	// Agregar un ingrediente limpia el error de composición vacía.
	c.SetEntry(milkIngredient())
	require.Nil(t, c.AddIngredient())
	assert.NotContains(t, c.Errors(), "ingredients")
}

func TestRecipeComposer_QuitarUltimoNoReDisparaHastaElProximoEnvio(t *testing.T) {
	c := forms.NewRecipeComposer(cheeseRecipeDraft())
	c.RemoveIngredient(0)

	require.Empty(t, c.Ingredients())
	assert.Nil(t, c.Errors(), "quitar el último ingrediente no re-afirma el error")

	_, errs := c.Submit()
	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeEmptyComposition, errs["ingredients"].Code)
}

func TestRecipeComposer_RemoveIndiceFueraDeRangoEsNoOp(t *testing.T) {
	c := forms.NewRecipeComposer(cheeseRecipeDraft())
	c.RemoveIngredient(-1)
	c.RemoveIngredient(5)
	assert.Len(t, c.Ingredients(), 1)
}

func TestRecipeComposer_SubmitExitoso(t *testing.T) {
	c := forms.NewRecipeComposer(cheeseRecipeDraft())
	v, errs := c.Submit()

	require.Nil(t, errs)
	require.NotNil(t, v)
	assert.Nil(t, c.Errors())
	assert.Len(t, v.Ingredients, 1)
}
