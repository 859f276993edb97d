package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. El total se calcula en el servidor.
type CreateSaleRequest struct {
	Product   string          `json:"product" validate:"notblank,max=200"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"dgt0"`
	Type      string          `json:"type" validate:"notblank,max=50"`
	Status    string          `json:"status" validate:"oneof=Completed Pending Cancelled"`
	SaleDate  *time.Time      `json:"sale_date"`
	Notes     string          `json:"notes" validate:"max=500"`
}

// UpdateSaleRequest actualización parcial: los campos ausentes no se tocan.
type UpdateSaleRequest struct {
	Product   *string          `json:"product" validate:"omitempty,notblank,max=200"`
	Quantity  *int             `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,dgt0"`
	Type      *string          `json:"type" validate:"omitempty,notblank,max=50"`
	Status    *string          `json:"status" validate:"omitempty,oneof=Completed Pending Cancelled"`
	SaleDate  *time.Time       `json:"sale_date"`
	Notes     *string          `json:"notes" validate:"omitempty,max=500"`
}

// SaleResponse vista resumida de una venta (dashboard).
type SaleResponse struct {
	ID        string          `json:"id"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	SaleDate  time.Time       `json:"sale_date"`
	Notes     string          `json:"notes"`
}

// SaleDetailResponse vista detallada con el nombre y email del dueño desnormalizados.
type SaleDetailResponse struct {
	SaleResponse
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

// SaleColumns metadatos de la tabla de ventas.
var SaleColumns = []Column{
	{Field: "id", Label: "ID", Type: "string", Sortable: true},
	{Field: "product", Label: "Producto", Type: "string", Sortable: true},
	{Field: "quantity", Label: "Cantidad", Type: "number", Sortable: true},
	{Field: "unit_price", Label: "Precio unitario", Type: "currency", Sortable: true},
	{Field: "total", Label: "Total", Type: "currency", Sortable: true},
	{Field: "type", Label: "Tipo", Type: "string", Sortable: true},
	{Field: "status", Label: "Estado", Type: "string", Sortable: true},
	{Field: "sale_date", Label: "Fecha de venta", Type: "datetime", Sortable: true},
	{Field: "notes", Label: "Observaciones", Type: "string", Sortable: false},
}
