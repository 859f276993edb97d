package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una venta.
const (
	SaleStatusCompleted = "Completed"
	SaleStatusPending   = "Pending"
	SaleStatusCancelled = "Cancelled"
)

// SaleStatuses en el orden en que se reportan.
var SaleStatuses = []string{SaleStatusCompleted, SaleStatusPending, SaleStatusCancelled}

// Sale representa una venta registrada por un usuario.
// Total siempre es UnitPrice * Quantity; solo NewSale y Apply lo escriben.
type Sale struct {
	ID        string
	UserID    string
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Type      string
	Status    string
	SaleDate  time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaleFields datos de entrada de una venta nueva.
type SaleFields struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	Type      string
	Status    string
	SaleDate  *time.Time // nil = momento de creación
	Notes     string
}

// SalePatch actualización parcial: solo se aplican los campos no nil.
type SalePatch struct {
	Product   *string
	Quantity  *int
	UnitPrice *decimal.Decimal
	Type      *string
	Status    *string
	SaleDate  *time.Time
	Notes     *string
}

// NewSale construye la venta con sus campos derivados (total y marcas de tiempo).
func NewSale(id, userID string, f SaleFields, now time.Time) *Sale {
	s := &Sale{
		ID:        id,
		UserID:    userID,
		Product:   f.Product,
		Quantity:  f.Quantity,
		UnitPrice: f.UnitPrice,
		Type:      f.Type,
		Status:    f.Status,
		SaleDate:  now,
		Notes:     f.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if f.SaleDate != nil {
		s.SaleDate = *f.SaleDate
	}
	s.Recalculate()
	return s
}

// Apply aplica el parche, recalcula el total y actualiza UpdatedAt.
func (s *Sale) Apply(p SalePatch, now time.Time) {
	if p.Product != nil {
		s.Product = *p.Product
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		s.UnitPrice = *p.UnitPrice
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.SaleDate != nil {
		s.SaleDate = *p.SaleDate
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	s.Recalculate()
	s.UpdatedAt = now
}

// Recalculate fija Total = UnitPrice * Quantity.
func (s *Sale) Recalculate() {
	s.Total = s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// OwnerID devuelve el usuario dueño de la venta.
func (s *Sale) OwnerID() string { return s.UserID }
