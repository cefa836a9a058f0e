package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
)

// Helpers de parseo para requests que no pasan por un borrador de formulario
// completo. Misma convención que forms: string vacío = no informado.

func parseRequiredQuantity(errs forms.FieldErrors, field, raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[field] = forms.FieldError{Code: forms.CodeInvalidQuantity, Message: "cantidad requerida"}
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		errs[field] = forms.FieldError{Code: forms.CodeInvalidNumber, Message: "valor numérico inválido"}
		return nil
	}
	if !d.IsPositive() {
		errs[field] = forms.FieldError{Code: forms.CodeInvalidQuantity, Message: "la cantidad debe ser mayor que cero"}
		return nil
	}
	return &d
}

func parseRequiredDate(errs forms.FieldErrors, field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[field] = forms.FieldError{Code: forms.CodeMissingField, Message: "fecha requerida"}
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		errs[field] = forms.FieldError{Code: forms.CodeInvalidNumber, Message: "fecha inválida, formato esperado YYYY-MM-DD"}
		return nil
	}
	return &t
}
