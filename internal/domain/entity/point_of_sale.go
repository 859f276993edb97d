package entity

import "time"

// Tipos habituales de punto de venta (texto libre, no se restringe).
const (
	PointOfSaleHeadquarters = "Headquarters"
	PointOfSaleBranch       = "Branch"
	PointOfSaleFranchise    = "Franchise"
	PointOfSaleKiosk        = "Kiosk"
)

// PointOfSale (PDV) tienda, quiosco o franquicia de un usuario.
type PointOfSale struct {
	ID           string
	UserID       string
	Name         string
	Address      string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	Phone        string
	Email        string
	Manager      string
	Type         string
	Active       bool
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PointOfSaleFields contenido reemplazable de un PDV.
type PointOfSaleFields struct {
	Name         string
	Address      string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	Phone        string
	Email        string
	Manager      string
	Type         string
	Notes        string
	Active       *bool
}

// NewPointOfSale construye el PDV; Active por defecto es true.
func NewPointOfSale(id, userID string, f PointOfSaleFields, now time.Time) *PointOfSale {
	p := &PointOfSale{ID: id, UserID: userID, Active: true, CreatedAt: now}
	p.Replace(f, now)
	return p
}

// Replace sustituye todos los campos editables.
func (p *PointOfSale) Replace(f PointOfSaleFields, now time.Time) {
	p.Name = f.Name
	p.Address = f.Address
	p.Neighborhood = f.Neighborhood
	p.City = f.City
	p.State = f.State
	p.PostalCode = f.PostalCode
	p.Phone = f.Phone
	p.Email = f.Email
	p.Manager = f.Manager
	p.Type = f.Type
	p.Notes = f.Notes
	if f.Active != nil {
		p.Active = *f.Active
	}
	p.UpdatedAt = now
}

func (p *PointOfSale) OwnerID() string { return p.UserID }
