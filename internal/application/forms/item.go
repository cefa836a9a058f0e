package forms

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
	"github.com/tu-usuario/lacteos-pro/internal/domain/pricing"
)

// ItemDraft es el borrador crudo del formulario de alta de ítems. Todos los
// campos llegan como string tal como los captura la UI; el borrador es efímero
// y nunca se muta: la validación devuelve una proyección tipada.
type ItemDraft struct {
	Name        string
	Unit        string
	ItemKind    string // catalog.ItemKindRawMaterial | catalog.ItemKindProduct
	Description string

	// Solo productos
	ProductType    string
	WholesalePrice string
	RetailPrice    string
	CostPrice      string

	// Solo materias primas
	PurchasePrice string
	SupplierPrice string

	// Comunes
	TaxRate           string
	HTPrice           string
	MinStockLevel     string
	MaxStockLevel     string
	Barcode           string
	ShelfLifeDays     string
	StorageConditions string
}

// ValidatedItem es el payload tipado y podado según el tipo de ítem: los campos
// irrelevantes para el tipo quedan en cero y no viajan en la serialización.
type ValidatedItem struct {
	ItemKind    string          `json:"item_kind"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Description string          `json:"description,omitempty"`

	ProductType    string           `json:"product_type,omitempty"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	RetailPrice    *decimal.Decimal `json:"retail_price,omitempty"`
	CostPrice      *decimal.Decimal `json:"cost_price,omitempty"`
	ProfitMargin   *decimal.Decimal `json:"profit_margin,omitempty"`

	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SupplierPrice *decimal.Decimal `json:"supplier_price,omitempty"`

	TaxRate           *decimal.Decimal `json:"tax_rate,omitempty"`
	HTPrice           *decimal.Decimal `json:"ht_price,omitempty"`
	TTCPrice          *decimal.Decimal `json:"ttc_price,omitempty"`
	MinStockLevel     *decimal.Decimal `json:"min_stock_level,omitempty"`
	MaxStockLevel     *decimal.Decimal `json:"max_stock_level,omitempty"`
	Barcode           string           `json:"barcode,omitempty"`
	ShelfLifeDays     *int             `json:"shelf_life_days,omitempty"`
	StorageConditions string           `json:"storage_conditions,omitempty"`
}

// ValidateItemDraft valida el borrador y devuelve la proyección tipada o el mapa
// de errores por campo. El borrador original no se modifica.
//
// Reglas: name y unit requeridos; retail_price obligatorio para productos;
// purchase_price obligatorio para materias primas; numéricos vacíos se omiten
// del payload; cost_price, si se informa, debe ser > 0 (es el divisor del margen).
func ValidateItemDraft(draft ItemDraft) (*ValidatedItem, FieldErrors) {
	errs := FieldErrors{}

	if !catalog.IsValidItemKind(draft.ItemKind) {
		errs.add("item_kind", CodeMissingField, "tipo de ítem inválido")
		return nil, errs
	}
	if strings.TrimSpace(draft.Name) == "" {
		errs.add("name", CodeMissingField, "el nombre es requerido")
	}
	if strings.TrimSpace(draft.Unit) == "" {
		errs.add("unit", CodeMissingField, "la unidad es requerida")
	} else if !catalog.IsValidUnit(draft.Unit) {
		errs.add("unit", CodeMissingField, "unidad fuera del catálogo")
	}

	out := &ValidatedItem{
		ItemKind:          draft.ItemKind,
		Name:              strings.TrimSpace(draft.Name),
		Unit:              draft.Unit,
		Description:       strings.TrimSpace(draft.Description),
		Barcode:           strings.TrimSpace(draft.Barcode),
		StorageConditions: strings.TrimSpace(draft.StorageConditions),
	}
	out.TaxRate = optionalNonNegativeDecimal(errs, "tax_rate", draft.TaxRate)
	if out.TaxRate != nil && out.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		errs.add("tax_rate", CodeInvalidNumber, "el porcentaje de impuesto no puede superar 100")
		out.TaxRate = nil
	}
	out.HTPrice = optionalNonNegativeDecimal(errs, "ht_price", draft.HTPrice)
	out.MinStockLevel = optionalNonNegativeDecimal(errs, "min_stock_level", draft.MinStockLevel)
	out.MaxStockLevel = optionalNonNegativeDecimal(errs, "max_stock_level", draft.MaxStockLevel)
	out.ShelfLifeDays = optionalPositiveInt(errs, "shelf_life_days", draft.ShelfLifeDays)

	// Proyección por tipo: los campos del otro tipo se descartan, no se copian.
	switch draft.ItemKind {
	case catalog.ItemKindProduct:
		if draft.ProductType != "" && !catalog.IsValidProductType(draft.ProductType) {
			errs.add("product_type", CodeMissingField, "tipo de producto fuera del catálogo")
		} else {
			out.ProductType = draft.ProductType
		}
		out.RetailPrice = requiredDecimal(errs, "retail_price", draft.RetailPrice)
		out.WholesalePrice = optionalNonNegativeDecimal(errs, "wholesale_price", draft.WholesalePrice)
		out.CostPrice = optionalDecimal(errs, "cost_price", draft.CostPrice)
		if out.CostPrice != nil && !out.CostPrice.IsPositive() {
			// cost_price = 0 produciría división por cero en el margen
			errs.add("cost_price", CodeInvalidQuantity, "el precio de costo debe ser mayor que cero")
			out.CostPrice = nil
		}
	case catalog.ItemKindRawMaterial:
		out.PurchasePrice = requiredDecimal(errs, "purchase_price", draft.PurchasePrice)
		out.SupplierPrice = optionalNonNegativeDecimal(errs, "supplier_price", draft.SupplierPrice)
	}

	if len(errs) > 0 {
		return nil, errs.orNil()
	}
	return out, nil
}

// PricingFacts expone los precios del ítem validado para el calculador de derivados.
func (v *ValidatedItem) PricingFacts() pricing.Facts {
	return pricing.Facts{
		HTPrice:       v.HTPrice,
		TaxRate:       v.TaxRate,
		TTCPrice:      v.TTCPrice,
		CostPrice:     v.CostPrice,
		RetailPrice:   v.RetailPrice,
		PurchasePrice: v.PurchasePrice,
		ProfitMargin:  v.ProfitMargin,
	}
}

// ApplyPricing escribe los campos derivados recalculados. Siempre pisa los
// valores anteriores: los derivados nunca son autoritativos por sí mismos.
func (v *ValidatedItem) ApplyPricing(f pricing.Facts) {
	v.TTCPrice = f.TTCPrice
	v.ProfitMargin = f.ProfitMargin
}

// Draft reconstruye un borrador a partir del ítem validado. Re-validar ese
// borrador no produce errores nuevos (validación idempotente).
func (v *ValidatedItem) Draft() ItemDraft {
	d := ItemDraft{
		Name:              v.Name,
		Unit:              v.Unit,
		ItemKind:          v.ItemKind,
		Description:       v.Description,
		ProductType:       v.ProductType,
		Barcode:           v.Barcode,
		StorageConditions: v.StorageConditions,
		WholesalePrice:    decimalToField(v.WholesalePrice),
		RetailPrice:       decimalToField(v.RetailPrice),
		CostPrice:         decimalToField(v.CostPrice),
		PurchasePrice:     decimalToField(v.PurchasePrice),
		SupplierPrice:     decimalToField(v.SupplierPrice),
		TaxRate:           decimalToField(v.TaxRate),
		HTPrice:           decimalToField(v.HTPrice),
		MinStockLevel:     decimalToField(v.MinStockLevel),
		MaxStockLevel:     decimalToField(v.MaxStockLevel),
	}
	if v.ShelfLifeDays != nil {
		d.ShelfLifeDays = decimal.NewFromInt(int64(*v.ShelfLifeDays)).String()
	}
	return d
}

func decimalToField(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func dateToField(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
