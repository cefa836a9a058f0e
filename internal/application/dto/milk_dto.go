package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
)

// RegisterCollectionRequest entrada cruda del formulario de recolección de leche.
type RegisterCollectionRequest struct {
	SupplierID     string `json:"supplier_id"`
	CollectionDate string `json:"collection_date"`
	Quantity       string `json:"quantity"`
	Temperature    string `json:"temperature"`
	FatContent     string `json:"fat_content"`
	Density        string `json:"density"`
	Acidity        string `json:"acidity"`
	Notes          string `json:"notes"`
}

// Draft convierte el request al borrador de formulario.
func (r RegisterCollectionRequest) Draft() forms.MilkCollectionDraft {
	return forms.MilkCollectionDraft{
		SupplierID:     r.SupplierID,
		CollectionDate: r.CollectionDate,
		Quantity:       r.Quantity,
		Temperature:    r.Temperature,
		FatContent:     r.FatContent,
		Density:        r.Density,
		Acidity:        r.Acidity,
		Notes:          r.Notes,
	}
}

// CollectionResponse salida de una recolección registrada.
type CollectionResponse struct {
	ID             string           `json:"id"`
	SupplierID     string           `json:"supplier_id"`
	CollectionDate time.Time        `json:"collection_date"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Temperature    *decimal.Decimal `json:"temperature,omitempty"`
	FatContent     *decimal.Decimal `json:"fat_content,omitempty"`
	Density        *decimal.Decimal `json:"density,omitempty"`
	Acidity        *decimal.Decimal `json:"acidity,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// CollectionListResponse recolecciones de un rango de fechas.
type CollectionListResponse struct {
	Items []CollectionResponse `json:"items"`
	Total decimal.Decimal      `json:"total_quantity"`
}
