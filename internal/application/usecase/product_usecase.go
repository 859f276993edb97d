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

// DefaultLowStockThreshold umbral de stock bajo cuando no se configura otro.
const DefaultLowStockThreshold = 10

// ProductUseCase casos de uso CRUD para productos. El código es único por usuario.
type ProductUseCase struct {
	repo              repository.ProductRepository
	validate          *validation.Validator
	lowStockThreshold int
	now               func() time.Time
}

// NewProductUseCase construye el caso de uso. lowStock <= 0 usa DefaultLowStockThreshold.
func NewProductUseCase(repo repository.ProductRepository, v *validation.Validator, lowStock int) *ProductUseCase {
	if lowStock <= 0 {
		lowStock = DefaultLowStockThreshold
	}
	return &ProductUseCase{repo: repo, validate: v, lowStockThreshold: lowStock, now: time.Now}
}

// Create crea el producto. Devuelve ErrDuplicateCode si el usuario ya tiene ese código.
func (uc *ProductUseCase) Create(ctx context.Context, user *entity.User, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	fields := productFields(in)
	existing, err := uc.repo.GetByUserAndCode(ctx, user.ID, fields.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	product := entity.NewProduct(uuid.New().String(), user.ID, fields, uc.now())
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve el producto si pertenece al usuario.
func (uc *ProductUseCase) GetByID(ctx context.Context, user *entity.User, id string) (*dto.ProductResponse, error) {
	product, err := authz.Load[entity.Product](ctx, uc.repo.GetByID, id, user)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCode busca por código dentro del catálogo del usuario.
func (uc *ProductUseCase) GetByCode(ctx context.Context, user *entity.User, code string) (*dto.ProductResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	product, err := uc.repo.GetByUserAndCode(ctx, user.ID, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update reemplaza todos los campos. Si cambia el código se vuelve a comprobar la unicidad.
// La propiedad se comprueba antes que el cuerpo: un ajeno recibe 403 aunque el cuerpo sea inválido.
func (uc *ProductUseCase) Update(ctx context.Context, user *entity.User, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := authz.Load[entity.Product](ctx, uc.repo.GetByID, id, user)
	if err != nil {
		return nil, err
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	fields := productFields(in)
	if fields.Code != product.Code {
		clash, err := uc.repo.GetByUserAndCode(ctx, user.ID, fields.Code)
		if err != nil {
			return nil, err
		}
		if clash != nil {
			return nil, domain.ErrDuplicateCode
		}
	}
	product.Replace(fields, uc.now())
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto si pertenece al usuario.
func (uc *ProductUseCase) Delete(ctx context.Context, user *entity.User, id string) error {
	if _, err := authz.Load[entity.Product](ctx, uc.repo.GetByID, id, user); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List productos del usuario (name contiene; category y active exactos).
func (uc *ProductUseCase) List(ctx context.Context, user *entity.User, field, value string) ([]dto.ProductResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	filter, err := productFilters.build(field, value)
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Categories categorías distintas del catálogo del usuario.
func (uc *ProductUseCase) Categories(ctx context.Context, user *entity.User) ([]string, error) {
	return uc.DistinctValues(ctx, user, repository.FieldCategory)
}

// DistinctValues valores únicos de un campo, ordenados.
func (uc *ProductUseCase) DistinctValues(ctx context.Context, user *entity.User, field string) ([]string, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := checkDistinctField(productDistinct, field); err != nil {
		return nil, err
	}
	return uc.repo.DistinctValues(ctx, user.ID, field)
}

// LowStock productos con stock <= threshold en orden ascendente de stock.
// threshold nil usa el umbral configurado.
func (uc *ProductUseCase) LowStock(ctx context.Context, user *entity.User, threshold *int) ([]dto.ProductResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	limit := uc.lowStockThreshold
	if threshold != nil {
		if *threshold < 0 {
			return nil, domain.NewValidationError("threshold", "min", "debe ser al menos 0")
		}
		limit = *threshold
	}
	products, err := uc.repo.ListLowStock(ctx, user.ID, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func productFields(in dto.ProductRequest) entity.ProductFields {
	f := entity.ProductFields{
		Code:         strings.TrimSpace(in.Code),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Category:     strings.TrimSpace(in.Category),
		Price:        in.Price,
		Manufacturer: in.Manufacturer,
		Unit:         in.Unit,
		Active:       in.Active,
	}
	if in.Stock != nil {
		f.Stock = *in.Stock
	}
	return f
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		Stock:        p.Stock,
		Manufacturer: p.Manufacturer,
		Unit:         p.Unit,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
