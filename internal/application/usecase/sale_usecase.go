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

// SaleTxRunner ejecuta fn con un repositorio de ventas dentro de una unidad atómica.
type SaleTxRunner interface {
	RunSales(ctx context.Context, fn func(repo repository.SaleRepository) error) error
}

// SaleUseCase CRUD y consultas de ventas, siempre acotadas al usuario actual.
type SaleUseCase struct {
	repo     repository.SaleRepository
	tx       SaleTxRunner
	validate *validation.Validator
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso. Update y Delete corren dentro de tx.
func NewSaleUseCase(repo repository.SaleRepository, tx SaleTxRunner, v *validation.Validator) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx, validate: v, now: time.Now}
}

// Create registra una venta del usuario. El total se calcula aquí, nunca se recibe.
func (uc *SaleUseCase) Create(ctx context.Context, user *entity.User, in dto.CreateSaleRequest) (*dto.SaleDetailResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	sale := entity.NewSale(uuid.New().String(), user.ID, entity.SaleFields{
		Product:   strings.TrimSpace(in.Product),
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Type:      strings.TrimSpace(in.Type),
		Status:    in.Status,
		SaleDate:  in.SaleDate,
		Notes:     in.Notes,
	}, uc.now())
	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return ToSaleDetail(sale, user), nil
}

// GetByID devuelve la venta si pertenece al usuario.
func (uc *SaleUseCase) GetByID(ctx context.Context, user *entity.User, id string) (*dto.SaleDetailResponse, error) {
	sale, err := authz.Load[entity.Sale](ctx, uc.repo.GetByID, id, user)
	if err != nil {
		return nil, err
	}
	return ToSaleDetail(sale, user), nil
}

// Update aplica solo los campos presentes y recalcula el total.
func (uc *SaleUseCase) Update(ctx context.Context, user *entity.User, id string, in dto.UpdateSaleRequest) (*dto.SaleDetailResponse, error) {
	var sale *entity.Sale
	err := uc.tx.RunSales(ctx, func(repo repository.SaleRepository) error {
		var err error
		sale, err = authz.Load[entity.Sale](ctx, repo.GetByID, id, user)
		if err != nil {
			return err
		}
		if err := uc.validate.Struct(in); err != nil {
			return err
		}
		sale.Apply(entity.SalePatch{
			Product:   trimPtr(in.Product),
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Type:      trimPtr(in.Type),
			Status:    in.Status,
			SaleDate:  in.SaleDate,
			Notes:     in.Notes,
		}, uc.now())
		return repo.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return ToSaleDetail(sale, user), nil
}

// Delete elimina la venta si pertenece al usuario.
func (uc *SaleUseCase) Delete(ctx context.Context, user *entity.User, id string) error {
	return uc.tx.RunSales(ctx, func(repo repository.SaleRepository) error {
		if _, err := authz.Load[entity.Sale](ctx, repo.GetByID, id, user); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

// List ventas del usuario, opcionalmente filtradas (product contiene; type y status exactos).
func (uc *SaleUseCase) List(ctx context.Context, user *entity.User, field, value string) ([]dto.SaleDetailResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	filter, err := saleFilters.build(field, value)
	if err != nil {
		return nil, err
	}
	sales, err := uc.repo.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	return toSaleDetails(sales, user), nil
}

// GetByIDs búsqueda por lote: carga sin filtro de dueño y descarta las ajenas.
// Los IDs inexistentes o ajenos simplemente no aparecen en el resultado.
func (uc *SaleUseCase) GetByIDs(ctx context.Context, user *entity.User, ids []string) ([]dto.SaleDetailResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			clean = append(clean, id)
		}
	}
	if len(clean) == 0 {
		return []dto.SaleDetailResponse{}, nil
	}
	sales, err := uc.repo.GetByIDs(ctx, clean)
	if err != nil {
		return nil, err
	}
	return toSaleDetails(authz.FilterOwned(sales, user), user), nil
}

// DistinctValues valores únicos de type, status o product para los filtros del frontend.
func (uc *SaleUseCase) DistinctValues(ctx context.Context, user *entity.User, field string) ([]string, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := checkDistinctField(saleDistinct, field); err != nil {
		return nil, err
	}
	return uc.repo.DistinctValues(ctx, user.ID, field)
}

// ToSaleDetail vista detallada; owner es el dueño ya verificado.
func ToSaleDetail(s *entity.Sale, owner *entity.User) *dto.SaleDetailResponse {
	out := &dto.SaleDetailResponse{
		SaleResponse: ToSaleResponse(s),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if owner != nil {
		out.UserName = owner.Name
		out.UserEmail = owner.Email
	}
	return out
}

// ToSaleResponse vista resumida usada por el dashboard.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		Product:   s.Product,
		Quantity:  s.Quantity,
		UnitPrice: s.UnitPrice,
		Total:     s.Total,
		Type:      s.Type,
		Status:    s.Status,
		SaleDate:  s.SaleDate,
		Notes:     s.Notes,
	}
}

func toSaleDetails(sales []*entity.Sale, owner *entity.User) []dto.SaleDetailResponse {
	out := make([]dto.SaleDetailResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *ToSaleDetail(s, owner))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
