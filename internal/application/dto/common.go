package dto

import "github.com/tu-usuario/lacteos-pro/internal/application/forms"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorResponse cuerpo de error de validación de formulario: un error por
// campo, para que la UI lo muestre junto a cada input.
type FieldErrorResponse struct {
	Code   string            `json:"code"` // siempre "VALIDATION"
	Fields forms.FieldErrors `json:"fields"`
}

// NewFieldErrorResponse arma la respuesta 422 a partir del mapa de errores.
func NewFieldErrorResponse(fields forms.FieldErrors) FieldErrorResponse {
	return FieldErrorResponse{Code: "VALIDATION", Fields: fields}
}
