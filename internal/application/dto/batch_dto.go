package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBatchRequest entrada cruda del formulario de lote de producción.
type CreateBatchRequest struct {
	RecipeID        string `json:"recipe_id"`
	BatchNumber     string `json:"batch_number"` // vacío = se genera
	PlannedQuantity string `json:"planned_quantity"`
	StartDate       string `json:"start_date"`
	SupervisorID    string `json:"supervisor_id"`
	Notes           string `json:"notes"`
}

// UpdateBatchStatusRequest entrada para avanzar el estado de un lote.
type UpdateBatchStatusRequest struct {
	Status         string `json:"status"`
	ActualQuantity string `json:"actual_quantity"` // requerido al completar
}

// BatchResponse salida de un lote de producción.
type BatchResponse struct {
	ID              string           `json:"id"`
	RecipeID        string           `json:"recipe_id"`
	BatchNumber     string           `json:"batch_number"`
	PlannedQuantity decimal.Decimal  `json:"planned_quantity"`
	ActualQuantity  *decimal.Decimal `json:"actual_quantity,omitempty"`
	Status          string           `json:"status"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	SupervisorID    string           `json:"supervisor_id,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// BatchListResponse lista paginada de lotes.
type BatchListResponse struct {
	Items []BatchResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
