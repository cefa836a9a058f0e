package forms

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Convenciones de los campos crudos de formulario: string vacío significa
// "no informado" y se omite del payload validado (nunca se envía como 0 ni null).
// Este archivo centraliza esa convención para todos los borradores.

const dateLayout = "2006-01-02"

// optionalDecimal parsea un campo numérico opcional. Devuelve nil si el valor
// está vacío; registra INVALID_NUMBER si no parsea.
func optionalDecimal(errs FieldErrors, field, raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		errs.add(field, CodeInvalidNumber, "valor numérico inválido")
		return nil
	}
	return &d
}

// optionalNonNegativeDecimal como optionalDecimal, pero rechaza valores < 0.
func optionalNonNegativeDecimal(errs FieldErrors, field, raw string) *decimal.Decimal {
	d := optionalDecimal(errs, field, raw)
	if d != nil && d.IsNegative() {
		errs.add(field, CodeInvalidNumber, "no puede ser negativo")
		return nil
	}
	return d
}

// requiredDecimal parsea un campo numérico obligatorio (>= 0).
func requiredDecimal(errs FieldErrors, field, raw string) *decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		errs.add(field, CodeMissingField, "campo requerido")
		return nil
	}
	return optionalNonNegativeDecimal(errs, field, raw)
}

// positiveQuantity parsea una cantidad obligatoria (> 0). Ausencia y valor no
// positivo se reportan con badCode; la basura no parseable siempre es INVALID_NUMBER.
func positiveQuantity(errs FieldErrors, field, raw, badCode string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs.add(field, badCode, "cantidad requerida")
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		errs.add(field, CodeInvalidNumber, "valor numérico inválido")
		return nil
	}
	if !d.IsPositive() {
		errs.add(field, badCode, "la cantidad debe ser mayor que cero")
		return nil
	}
	return &d
}

// requiredPositiveQuantity cantidad obligatoria de movimientos: ausencia o <= 0
// se reportan como INVALID_QUANTITY.
func requiredPositiveQuantity(errs FieldErrors, field, raw string) *decimal.Decimal {
	return positiveQuantity(errs, field, raw, CodeInvalidQuantity)
}

// requiredQuantityField cantidad obligatoria de recetas: ausencia o <= 0 se
// reportan como MISSING_FIELD (el campo cuenta como no informado).
func requiredQuantityField(errs FieldErrors, field, raw string) *decimal.Decimal {
	return positiveQuantity(errs, field, raw, CodeMissingField)
}

// optionalPositiveInt parsea un entero opcional >= 0 (ej. días de vida útil).
func optionalPositiveInt(errs FieldErrors, field, raw string) *int {
	d := optionalNonNegativeDecimal(errs, field, raw)
	if d == nil {
		return nil
	}
	if !d.IsInteger() {
		errs.add(field, CodeInvalidNumber, "debe ser un número entero")
		return nil
	}
	n := int(d.IntPart())
	return &n
}

// requiredDate parsea una fecha obligatoria en formato YYYY-MM-DD. Una fecha
// mal formada se reporta como INVALID_NUMBER, el código de valor no parseable;
// no existe un código propio para fechas.
func requiredDate(errs FieldErrors, field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs.add(field, CodeMissingField, "fecha requerida")
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		errs.add(field, CodeInvalidNumber, "fecha inválida, formato esperado YYYY-MM-DD")
		return nil
	}
	return &t
}

// optionalDate parsea una fecha opcional en formato YYYY-MM-DD.
func optionalDate(errs FieldErrors, field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		errs.add(field, CodeInvalidNumber, "fecha inválida, formato esperado YYYY-MM-DD")
		return nil
	}
	return &t
}
