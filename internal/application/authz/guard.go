// Package authz aplica el aislamiento por dueño a todos los recursos.
//
// Toda lectura por ID, actualización y borrado pasa por Load. Los listados se
// acotan al usuario en la propia consulta; la única excepción es la búsqueda
// por lote de IDs, que carga sin filtro y luego aplica FilterOwned.
package authz

import (
	"context"

	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
)

// Owned es cualquier entidad con un único usuario dueño.
type Owned interface {
	OwnerID() string
}

// AssertOwned devuelve domain.ErrForbidden si la entidad no pertenece al usuario.
func AssertOwned(e Owned, user *entity.User) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if e.OwnerID() != user.ID {
		return domain.ErrForbidden
	}
	return nil
}

// Finder carga una entidad por ID; (nil, nil) significa que no existe.
type Finder[P any] func(ctx context.Context, id string) (P, error)

// Load busca la entidad y aplica el guard.
// Un ID inexistente siempre es ErrNotFound; uno ajeno siempre es ErrForbidden.
func Load[E any, P interface {
	*E
	Owned
}](ctx context.Context, find Finder[P], id string, user *entity.User) (P, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	e, err := find(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if err := AssertOwned(e, user); err != nil {
		return nil, err
	}
	return e, nil
}

// FilterOwned conserva solo las entidades del usuario, preservando el orden.
func FilterOwned[P Owned](items []P, user *entity.User) []P {
	out := make([]P, 0, len(items))
	if user == nil {
		return out
	}
	for _, it := range items {
		if it.OwnerID() == user.ID {
			out = append(out, it)
		}
	}
	return out
}
