package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un usuario.
// Code es único por usuario, no global.
type Product struct {
	ID           string
	UserID       string
	Code         string
	Name         string
	Description  string
	Category     string
	Price        decimal.Decimal
	Stock        int
	Manufacturer string
	Unit         string // unidad, kg, litro, metro...
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductFields contenido reemplazable de un producto (create y update usan la misma forma).
type ProductFields struct {
	Code         string
	Name         string
	Description  string
	Category     string
	Price        decimal.Decimal
	Stock        int
	Manufacturer string
	Unit         string
	Active       *bool // nil: true al crear, sin cambio al actualizar
}

// NewProduct construye el producto; Active por defecto es true.
func NewProduct(id, userID string, f ProductFields, now time.Time) *Product {
	p := &Product{ID: id, UserID: userID, Active: true, CreatedAt: now}
	p.Replace(f, now)
	return p
}

// Replace sustituye todos los campos editables (semántica de reemplazo completo).
func (p *Product) Replace(f ProductFields, now time.Time) {
	p.Code = f.Code
	p.Name = f.Name
	p.Description = f.Description
	p.Category = f.Category
	p.Price = f.Price
	p.Stock = f.Stock
	p.Manufacturer = f.Manufacturer
	p.Unit = f.Unit
	if f.Active != nil {
		p.Active = *f.Active
	}
	p.UpdatedAt = now
}

func (p *Product) OwnerID() string { return p.UserID }
