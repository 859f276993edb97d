package dto

import "time"

// PointOfSaleRequest entrada para crear o reemplazar un punto de venta.
type PointOfSaleRequest struct {
	Name         string `json:"name" validate:"notblank,min=3,max=200"`
	Address      string `json:"address" validate:"notblank,max=500"`
	Neighborhood string `json:"neighborhood" validate:"max=100"`
	City         string `json:"city" validate:"max=100"`
	State        string `json:"state" validate:"omitempty,len=2"`
	PostalCode   string `json:"postal_code" validate:"omitempty,postcode_iso3166_alpha2=BR"`
	Phone        string `json:"phone" validate:"max=20"`
	Email        string `json:"email" validate:"omitempty,email,max=150"`
	Manager      string `json:"manager" validate:"max=100"`
	Type         string `json:"type" validate:"max=50"`
	Notes        string `json:"notes" validate:"max=1000"`
	Active       *bool  `json:"active"`
}

// PointOfSaleResponse salida de un punto de venta.
type PointOfSaleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Manager      string    `json:"manager"`
	Type         string    `json:"type"`
	Active       bool      `json:"active"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PointOfSaleColumns metadatos de la tabla de PDVs.
var PointOfSaleColumns = []Column{
	{Field: "id", Label: "ID", Type: "string", Sortable: true},
	{Field: "name", Label: "Nombre del PDV", Type: "string", Sortable: true},
	{Field: "address", Label: "Dirección", Type: "string", Sortable: true},
	{Field: "neighborhood", Label: "Barrio", Type: "string", Sortable: true},
	{Field: "city", Label: "Ciudad", Type: "string", Sortable: true},
	{Field: "state", Label: "Estado", Type: "string", Sortable: true},
	{Field: "postal_code", Label: "Código postal", Type: "string", Sortable: false},
	{Field: "phone", Label: "Teléfono", Type: "string", Sortable: false},
	{Field: "email", Label: "Email", Type: "string", Sortable: false},
	{Field: "manager", Label: "Responsable", Type: "string", Sortable: true},
	{Field: "type", Label: "Tipo", Type: "string", Sortable: true},
	{Field: "active", Label: "Estado", Type: "boolean", Sortable: true},
	{Field: "created_at", Label: "Fecha de creación", Type: "datetime", Sortable: true},
	{Field: "updated_at", Label: "Fecha de actualización", Type: "datetime", Sortable: true},
	{Field: "notes", Label: "Observaciones", Type: "string", Sortable: false},
}
