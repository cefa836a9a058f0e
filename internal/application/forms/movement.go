package forms

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
)

// MovementDraft es el borrador crudo del formulario de movimiento de stock.
type MovementDraft struct {
	Quantity       string
	MovementDate   string // YYYY-MM-DD
	BatchNumber    string
	UnitPrice      string // solo entradas
	ExpirationDate string // solo entradas
	SupplierID     string // solo materias primas
	ClientID       string // solo productos
	Notes          string
}

// ValidatedMovement payload tipado de un movimiento listo para registrar.
type ValidatedMovement struct {
	Direction      string           `json:"direction"`
	Quantity       decimal.Decimal  `json:"quantity"`
	MovementDate   time.Time        `json:"movement_date"`
	BatchNumber    string           `json:"batch_number,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
	SupplierID     string           `json:"supplier_id,omitempty"`
	ClientID       string           `json:"client_id,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// ValidateMovementDraft valida el borrador para la dirección dada.
//
// Cantidad ausente o <= 0 es INVALID_QUANTITY; fecha ausente es MISSING_FIELD.
// En salidas, unit_price y expiration_date se descartan activamente de la
// proyección aunque vengan en el borrador (la UI original solo los ocultaba).
// Las referencias de proveedor/cliente se aceptan tal cual: verificar que
// existan en el catálogo es responsabilidad de la capa de persistencia.
func ValidateMovementDraft(draft MovementDraft, direction string) (*ValidatedMovement, FieldErrors) {
	errs := FieldErrors{}

	if !catalog.IsValidDirection(direction) {
		errs.add("direction", CodeMissingField, "dirección de movimiento inválida")
		return nil, errs
	}
	qty := requiredPositiveQuantity(errs, "quantity", draft.Quantity)
	movDate := requiredDate(errs, "movement_date", draft.MovementDate)

	out := &ValidatedMovement{
		Direction:   direction,
		BatchNumber: strings.TrimSpace(draft.BatchNumber),
		SupplierID:  strings.TrimSpace(draft.SupplierID),
		ClientID:    strings.TrimSpace(draft.ClientID),
		Notes:       strings.TrimSpace(draft.Notes),
	}
	if direction == catalog.DirectionIn {
		out.UnitPrice = optionalNonNegativeDecimal(errs, "unit_price", draft.UnitPrice)
		out.ExpirationDate = optionalDate(errs, "expiration_date", draft.ExpirationDate)
	}

	if len(errs) > 0 {
		return nil, errs.orNil()
	}
	out.Quantity = *qty
	out.MovementDate = *movDate
	return out, nil
}

// Draft reconstruye un borrador a partir del movimiento validado.
func (v *ValidatedMovement) Draft() MovementDraft {
	return MovementDraft{
		Quantity:       v.Quantity.String(),
		MovementDate:   v.MovementDate.Format(dateLayout),
		BatchNumber:    v.BatchNumber,
		UnitPrice:      decimalToField(v.UnitPrice),
		ExpirationDate: dateToField(v.ExpirationDate),
		SupplierID:     v.SupplierID,
		ClientID:       v.ClientID,
		Notes:          v.Notes,
	}
}
