package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sales-api/internal/application/authz"
	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/validation"
	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

// PointOfSaleUseCase CRUD y consultas de puntos de venta.
type PointOfSaleUseCase struct {
	repo     repository.PointOfSaleRepository
	validate *validation.Validator
	now      func() time.Time
}

// NewPointOfSaleUseCase construye el caso de uso.
func NewPointOfSaleUseCase(repo repository.PointOfSaleRepository, v *validation.Validator) *PointOfSaleUseCase {
	return &PointOfSaleUseCase{repo: repo, validate: v, now: time.Now}
}

// Create crea el PDV del usuario; active por defecto es true.
func (uc *PointOfSaleUseCase) Create(ctx context.Context, user *entity.User, in dto.PointOfSaleRequest) (*dto.PointOfSaleResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	pos := entity.NewPointOfSale(uuid.New().String(), user.ID, pointOfSaleFields(in), uc.now())
	if err := uc.repo.Create(ctx, pos); err != nil {
		return nil, err
	}
	return toPointOfSaleResponse(pos), nil
}

// GetByID devuelve el PDV si pertenece al usuario.
func (uc *PointOfSaleUseCase) GetByID(ctx context.Context, user *entity.User, id string) (*dto.PointOfSaleResponse, error) {
	pos, err := authz.Load[entity.PointOfSale](ctx, uc.repo.GetByID, id, user)
	if err != nil {
		return nil, err
	}
	return toPointOfSaleResponse(pos), nil
}

// Update reemplazo completo de los campos editables.
func (uc *PointOfSaleUseCase) Update(ctx context.Context, user *entity.User, id string, in dto.PointOfSaleRequest) (*dto.PointOfSaleResponse, error) {
	pos, err := authz.Load[entity.PointOfSale](ctx, uc.repo.GetByID, id, user)
	if err != nil {
		return nil, err
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	pos.Replace(pointOfSaleFields(in), uc.now())
	if err := uc.repo.Update(ctx, pos); err != nil {
		return nil, err
	}
	return toPointOfSaleResponse(pos), nil
}

// Delete elimina el PDV si pertenece al usuario.
func (uc *PointOfSaleUseCase) Delete(ctx context.Context, user *entity.User, id string) error {
	if _, err := authz.Load[entity.PointOfSale](ctx, uc.repo.GetByID, id, user); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List PDVs del usuario. name, address y neighborhood se comparan por subcadena
// sin distinguir mayúsculas; city, state, type y active por igualdad.
func (uc *PointOfSaleUseCase) List(ctx context.Context, user *entity.User, field, value string) ([]dto.PointOfSaleResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	filter, err := pointOfSaleFilters.build(field, value)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PointOfSaleResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toPointOfSaleResponse(p))
	}
	return out, nil
}

// DistinctValues valores únicos de type, city o state.
func (uc *PointOfSaleUseCase) DistinctValues(ctx context.Context, user *entity.User, field string) ([]string, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := checkDistinctField(pointOfSaleDistinct, field); err != nil {
		return nil, err
	}
	return uc.repo.DistinctValues(ctx, user.ID, field)
}

func pointOfSaleFields(in dto.PointOfSaleRequest) entity.PointOfSaleFields {
	return entity.PointOfSaleFields{
		Name:         strings.TrimSpace(in.Name),
		Address:      strings.TrimSpace(in.Address),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		City:         strings.TrimSpace(in.City),
		State:        strings.ToUpper(strings.TrimSpace(in.State)),
		PostalCode:   in.PostalCode,
		Phone:        in.Phone,
		Email:        in.Email,
		Manager:      in.Manager,
		Type:         strings.TrimSpace(in.Type),
		Notes:        in.Notes,
		Active:       in.Active,
	}
}

func toPointOfSaleResponse(p *entity.PointOfSale) *dto.PointOfSaleResponse {
	return &dto.PointOfSaleResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Neighborhood: p.Neighborhood,
		City:         p.City,
		State:        p.State,
		PostalCode:   p.PostalCode,
		Phone:        p.Phone,
		Email:        p.Email,
		Manager:      p.Manager,
		Type:         p.Type,
		Active:       p.Active,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
