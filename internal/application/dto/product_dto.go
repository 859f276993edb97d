package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto (PUT es reemplazo completo).
type ProductRequest struct {
	Code         string          `json:"code" validate:"notblank,max=50"`
	Name         string          `json:"name" validate:"notblank,max=200"`
	Description  string          `json:"description" validate:"max=1000"`
	Category     string          `json:"category" validate:"notblank,max=100"`
	Price        decimal.Decimal `json:"price" validate:"dgt0"`
	Stock        *int            `json:"stock" validate:"required,min=0"`
	Manufacturer string          `json:"manufacturer" validate:"max=500"`
	Unit         string          `json:"unit" validate:"max=50"`
	Active       *bool           `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Manufacturer string          `json:"manufacturer"`
	Unit         string          `json:"unit"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductColumns metadatos de la tabla de productos.
var ProductColumns = []Column{
	{Field: "id", Label: "ID", Type: "string", Sortable: true},
	{Field: "code", Label: "Código", Type: "string", Sortable: true},
	{Field: "name", Label: "Nombre del producto", Type: "string", Sortable: true},
	{Field: "description", Label: "Descripción", Type: "string", Sortable: false},
	{Field: "category", Label: "Categoría", Type: "string", Sortable: true},
	{Field: "price", Label: "Precio", Type: "currency", Sortable: true},
	{Field: "stock", Label: "Stock", Type: "number", Sortable: true},
	{Field: "active", Label: "Estado", Type: "boolean", Sortable: true},
	{Field: "manufacturer", Label: "Fabricante", Type: "string", Sortable: true},
	{Field: "unit", Label: "Unidad", Type: "string", Sortable: false},
	{Field: "created_at", Label: "Fecha de creación", Type: "datetime", Sortable: true},
	{Field: "updated_at", Label: "Fecha de actualización", Type: "datetime", Sortable: true},
}
