package dto

import "github.com/jhoicas/sales-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Fields solo se llena en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// Column describe una columna de la tabla de un recurso en el frontend.
type Column struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Type     string `json:"type"` // number, string, currency, boolean, datetime
	Sortable bool   `json:"sortable"`
}
