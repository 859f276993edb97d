package repository

import (
	"context"

	"github.com/jhoicas/sales-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create devuelve domain.ErrDuplicateCode si el código ya existe para el usuario.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByUserAndCode(ctx context.Context, userID, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, filter *Filter) ([]*entity.Product, error)
	DistinctValues(ctx context.Context, userID, field string) ([]string, error)
	// ListLowStock productos con stock <= threshold, stock ascendente.
	ListLowStock(ctx context.Context, userID string, threshold int) ([]*entity.Product, error)
}
