// Package forms valida los borradores crudos de los formularios (ítems, recetas,
// movimientos, recolección de leche) y los proyecta a payloads tipados listos
// para persistir. Toda falla se reporta como un mapa de errores por campo; nunca
// se lanza como fallo fatal.
package forms

// Códigos de error de validación.
const (
	CodeMissingField     = "MISSING_FIELD"     // campo requerido vacío o ausente
	CodeInvalidNumber    = "INVALID_NUMBER"    // campo numérico no parseable
	CodeInvalidQuantity  = "INVALID_QUANTITY"  // cantidad parseada pero <= 0
	CodeEmptyComposition = "EMPTY_COMPOSITION" // receta sin ingredientes al enviar
	CodeMissingReference = "MISSING_REFERENCE" // ingrediente sin la referencia de su tipo
)

// FieldError describe una falla de validación de un campo concreto.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors mapa de errores por nombre de campo. El caller debe mostrar cada
// error junto a su input y bloquear el envío hasta que el mapa quede vacío.
type FieldErrors map[string]FieldError

// Error implementa error para poder propagar el mapa por las firmas habituales.
func (fe FieldErrors) Error() string {
	for field, e := range fe {
		return field + ": " + e.Message
	}
	return "validación fallida"
}

func (fe FieldErrors) add(field, code, message string) {
	fe[field] = FieldError{Code: code, Message: message}
}

// orNil devuelve nil cuando no hay errores, para que `errs == nil` funcione como
// señal de éxito en los callers.
func (fe FieldErrors) orNil() FieldErrors {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
