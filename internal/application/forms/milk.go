package forms

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MilkCollectionDraft es el borrador crudo del formulario de recolección de leche.
type MilkCollectionDraft struct {
	SupplierID     string
	CollectionDate string // YYYY-MM-DD
	Quantity       string // litros
	Temperature    string
	FatContent     string
	Density        string
	Acidity        string
	Notes          string
}

// ValidatedMilkCollection payload tipado de una recolección lista para registrar.
type ValidatedMilkCollection struct {
	SupplierID     string           `json:"supplier_id"`
	CollectionDate time.Time        `json:"collection_date"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Temperature    *decimal.Decimal `json:"temperature,omitempty"`
	FatContent     *decimal.Decimal `json:"fat_content,omitempty"`
	Density        *decimal.Decimal `json:"density,omitempty"`
	Acidity        *decimal.Decimal `json:"acidity,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// ValidateMilkCollectionDraft valida el borrador de recolección: proveedor y
// fecha requeridos, cantidad > 0, parámetros de calidad opcionales.
func ValidateMilkCollectionDraft(draft MilkCollectionDraft) (*ValidatedMilkCollection, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(draft.SupplierID) == "" {
		errs.add("supplier_id", CodeMissingField, "el proveedor es requerido")
	}
	date := requiredDate(errs, "collection_date", draft.CollectionDate)
	qty := requiredPositiveQuantity(errs, "quantity", draft.Quantity)

	out := &ValidatedMilkCollection{
		SupplierID: strings.TrimSpace(draft.SupplierID),
		Notes:      strings.TrimSpace(draft.Notes),
	}
	out.Temperature = optionalDecimal(errs, "temperature", draft.Temperature)
	out.FatContent = optionalNonNegativeDecimal(errs, "fat_content", draft.FatContent)
	out.Density = optionalNonNegativeDecimal(errs, "density", draft.Density)
	out.Acidity = optionalNonNegativeDecimal(errs, "acidity", draft.Acidity)

	if len(errs) > 0 {
		return nil, errs.orNil()
	}
	out.CollectionDate = *date
	out.Quantity = *qty
	return out, nil
}
