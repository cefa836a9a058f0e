package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
)

// RegisterMovementRequest entrada cruda del formulario de movimiento de stock.
type RegisterMovementRequest struct {
	ItemKind       string `json:"item_kind"` // raw_material | product
	ItemID         string `json:"item_id"`
	Direction      string `json:"direction"` // in | out
	Quantity       string `json:"quantity"`
	MovementDate   string `json:"movement_date"`
	BatchNumber    string `json:"batch_number"`
	UnitPrice      string `json:"unit_price"`
	ExpirationDate string `json:"expiration_date"`
	SupplierID     string `json:"supplier_id"`
	ClientID       string `json:"client_id"`
	Notes          string `json:"notes"`
}

// Draft convierte el request al borrador de formulario.
func (r RegisterMovementRequest) Draft() forms.MovementDraft {
	return forms.MovementDraft{
		Quantity:       r.Quantity,
		MovementDate:   r.MovementDate,
		BatchNumber:    r.BatchNumber,
		UnitPrice:      r.UnitPrice,
		ExpirationDate: r.ExpirationDate,
		SupplierID:     r.SupplierID,
		ClientID:       r.ClientID,
		Notes:          r.Notes,
	}
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID             string           `json:"id"`
	ItemKind       string           `json:"item_kind"`
	ItemID         string           `json:"item_id"`
	Direction      string           `json:"direction"`
	Quantity       decimal.Decimal  `json:"quantity"`
	MovementDate   time.Time        `json:"movement_date"`
	BatchNumber    string           `json:"batch_number,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
	SupplierID     string           `json:"supplier_id,omitempty"`
	ClientID       string           `json:"client_id,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// MovementListResponse historial de movimientos de un ítem.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
