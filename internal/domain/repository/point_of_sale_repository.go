package repository

import (
	"context"

	"github.com/jhoicas/sales-api/internal/domain/entity"
)

// PointOfSaleRepository define el puerto de persistencia para PointOfSale.
type PointOfSaleRepository interface {
	Create(ctx context.Context, pos *entity.PointOfSale) error
	GetByID(ctx context.Context, id string) (*entity.PointOfSale, error)
	Update(ctx context.Context, pos *entity.PointOfSale) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, filter *Filter) ([]*entity.PointOfSale, error)
	DistinctValues(ctx context.Context, userID, field string) ([]string, error)
}
