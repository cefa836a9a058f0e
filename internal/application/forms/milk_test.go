package forms_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
)

func collectionDraft() forms.MilkCollectionDraft {
	return forms.MilkCollectionDraft{
		SupplierID:     "sup-finca-01",
		CollectionDate: "2025-03-10",
		Quantity:       "320.5",
		Temperature:    "4.2",
		FatContent:     "3.6",
	}
}

func TestValidateMilkCollectionDraft_Valida(t *testing.T) {
	v, errs := forms.ValidateMilkCollectionDraft(collectionDraft())
	require.Nil(t, errs)

	assert.True(t, v.Quantity.Equal(decimal.RequireFromString("320.5")))
	require.NotNil(t, v.Temperature)
	assert.True(t, v.Temperature.Equal(decimal.RequireFromString("4.2")))
	assert.Nil(t, v.Density, "parámetro de calidad no informado se omite")
}

func TestValidateMilkCollectionDraft_SinProveedor(t *testing.T) {
	draft := collectionDraft()
	draft.SupplierID = "  "
	_, errs := forms.ValidateMilkCollectionDraft(draft)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeMissingField, errs["supplier_id"].Code)
}

func TestValidateMilkCollectionDraft_CantidadCero(t *testing.T) {
	draft := collectionDraft()
	draft.Quantity = "0"
	_, errs := forms.ValidateMilkCollectionDraft(draft)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeInvalidQuantity, errs["quantity"].Code)
}

func TestValidateMilkCollectionDraft_TemperaturaNegativaPermitida(t *testing.T) {
	// La temperatura puede ser bajo cero; no pasa por el filtro de no-negativos.
	draft := collectionDraft()
	draft.Temperature = "-1.5"
	v, errs := forms.ValidateMilkCollectionDraft(draft)

	require.Nil(t, errs)
	require.NotNil(t, v.Temperature)
	assert.True(t, v.Temperature.IsNegative())
}

func TestValidateMilkCollectionDraft_GrasaNegativaRechazada(t *testing.T) {
	draft := collectionDraft()
	draft.FatContent = "-3"
	_, errs := forms.ValidateMilkCollectionDraft(draft)

	require.NotNil(t, errs)
	assert.Equal(t, forms.CodeInvalidNumber, errs["fat_content"].Code)
}

func TestValidateMilkCollectionDraft_AcumulaErrores(t *testing.T) {
	_, errs := forms.ValidateMilkCollectionDraft(forms.MilkCollectionDraft{})

	require.NotNil(t, errs)
	assert.Contains(t, errs, "supplier_id")
	assert.Contains(t, errs, "collection_date")
	assert.Contains(t, errs, "quantity")
}
