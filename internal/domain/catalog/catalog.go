// Package catalog define los conjuntos cerrados de unidades de medida y
// etiquetas de tipo que usan los validadores y las listas de selección de la UI.
package catalog

// Unidades de medida admitidas.
const (
	UnitKg    = "kg"
	UnitG     = "g"
	UnitL     = "L"
	UnitMl    = "ml"
	UnitPiece = "piece"
)

// Tipos de ítem del inventario.
const (
	ItemKindRawMaterial = "raw_material"
	ItemKindProduct     = "product"
)

// Tipos de producto lácteo.
const (
	ProductTypeRawMilk         = "raw_milk"
	ProductTypePasteurizedMilk = "pasteurized_milk"
	ProductTypeCheese          = "cheese"
	ProductTypeYogurt          = "yogurt"
	ProductTypeOther           = "other"
)

// Direcciones de movimiento de stock.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Estados de un lote de producción.
const (
	BatchStatusPlanned    = "planned"
	BatchStatusInProgress = "in_progress"
	BatchStatusCompleted  = "completed"
	BatchStatusCancelled  = "cancelled"
)

// Units devuelve las unidades en el orden de las listas de selección.
func Units() []string {
	return []string{UnitKg, UnitG, UnitL, UnitMl, UnitPiece}
}

// ProductTypes devuelve los tipos de producto en el orden de las listas de selección.
func ProductTypes() []string {
	return []string{ProductTypeRawMilk, ProductTypePasteurizedMilk, ProductTypeCheese, ProductTypeYogurt, ProductTypeOther}
}

// IsValidUnit indica si la unidad pertenece al conjunto cerrado.
func IsValidUnit(u string) bool {
	switch u {
	case UnitKg, UnitG, UnitL, UnitMl, UnitPiece:
		return true
	}
	return false
}

// IsValidItemKind indica si el tipo de ítem es raw_material o product.
func IsValidItemKind(k string) bool {
	return k == ItemKindRawMaterial || k == ItemKindProduct
}

// IsValidProductType indica si el tipo de producto pertenece al conjunto cerrado.
func IsValidProductType(t string) bool {
	switch t {
	case ProductTypeRawMilk, ProductTypePasteurizedMilk, ProductTypeCheese, ProductTypeYogurt, ProductTypeOther:
		return true
	}
	return false
}

// IsValidDirection indica si la dirección es in u out.
func IsValidDirection(d string) bool {
	return d == DirectionIn || d == DirectionOut
}

// IsValidBatchStatus indica si el estado del lote pertenece al conjunto cerrado.
func IsValidBatchStatus(s string) bool {
	switch s {
	case BatchStatusPlanned, BatchStatusInProgress, BatchStatusCompleted, BatchStatusCancelled:
		return true
	}
	return false
}
