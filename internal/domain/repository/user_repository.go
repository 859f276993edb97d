package repository

import (
	"context"

	"github.com/jhoicas/sales-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (almacén de credenciales).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
