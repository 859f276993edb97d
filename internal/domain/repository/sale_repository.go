package repository

import (
	"context"

	"github.com/jhoicas/sales-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Los listados se ordenan por SaleDate descendente.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// GetByIDs no filtra por dueño; el llamador aplica el guard de propiedad.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
	// ListByUser con filter nil devuelve todas las ventas del usuario.
	ListByUser(ctx context.Context, userID string, filter *Filter) ([]*entity.Sale, error)
	DistinctValues(ctx context.Context, userID, field string) ([]string, error)
}
