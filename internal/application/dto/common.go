package dto

import "time"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
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
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MaintenanceErrorResponse cuerpo del 503 durante un mantenimiento.
type MaintenanceErrorResponse struct {
	Code           string    `json:"code"`
	Message        string    `json:"message"`
	Title          string    `json:"title,omitempty"`
	PlannedEndTime time.Time `json:"planned_end_time"`
}

// CodeDisplay par código/etiqueta para enumeraciones.
type CodeDisplay struct {
	Code    string `json:"code"`
	Display string `json:"display"`
}
