// Package analytics contiene el motor de agregación del dashboard de ventas.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/usecase"
	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

// DashboardUseCase expone las tarjetas, agrupaciones y listados del dashboard.
//
// Fuente de datos: SaleRepository, siempre acotado al usuario actual.
// El alta de ventas desde el dashboard delega en SaleUseCase.
type DashboardUseCase struct {
	sales   repository.SaleRepository
	creator *usecase.SaleUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(sales repository.SaleRepository, creator *usecase.SaleUseCase) *DashboardUseCase {
	return &DashboardUseCase{sales: sales, creator: creator}
}

// CardSummary totales, conteos por estado y ticket medio del usuario.
func (uc *DashboardUseCase) CardSummary(ctx context.Context, user *entity.User) (*dto.CardSummaryDTO, error) {
	sales, err := uc.load(ctx, user, nil)
	if err != nil {
		return nil, err
	}
	out := Summarize(sales)
	return &out, nil
}

// GroupedByType suma y cantidad por tipo de venta.
func (uc *DashboardUseCase) GroupedByType(ctx context.Context, user *entity.User) ([]dto.SalesByTypeDTO, error) {
	sales, err := uc.load(ctx, user, nil)
	if err != nil {
		return nil, err
	}
	return GroupByType(sales), nil
}

// Sales todas las ventas del usuario (vista resumida), fecha descendente.
func (uc *DashboardUseCase) Sales(ctx context.Context, user *entity.User) ([]dto.SaleResponse, error) {
	return uc.list(ctx, user, nil)
}

// SalesByType ventas de un tipo exacto.
func (uc *DashboardUseCase) SalesByType(ctx context.Context, user *entity.User, saleType string) ([]dto.SaleResponse, error) {
	return uc.list(ctx, user, &repository.Filter{Field: repository.FieldType, Value: saleType, Mode: repository.MatchExact})
}

// SalesByStatus ventas de un estado exacto.
func (uc *DashboardUseCase) SalesByStatus(ctx context.Context, user *entity.User, status string) ([]dto.SaleResponse, error) {
	return uc.list(ctx, user, &repository.Filter{Field: repository.FieldStatus, Value: status, Mode: repository.MatchExact})
}

// CreateSale alta de venta desde el dashboard; responde con la vista resumida.
func (uc *DashboardUseCase) CreateSale(ctx context.Context, user *entity.User, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	detail, err := uc.creator.Create(ctx, user, in)
	if err != nil {
		return nil, err
	}
	return &detail.SaleResponse, nil
}

// Types tipos de venta distintos del usuario, ordenados.
func (uc *DashboardUseCase) Types(ctx context.Context, user *entity.User) ([]string, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	types, err := uc.sales.DistinctValues(ctx, user.ID, repository.FieldType)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tipos: %w", err)
	}
	return types, nil
}

func (uc *DashboardUseCase) list(ctx context.Context, user *entity.User, f *repository.Filter) ([]dto.SaleResponse, error) {
	sales, err := uc.load(ctx, user, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, usecase.ToSaleResponse(s))
	}
	return out, nil
}

func (uc *DashboardUseCase) load(ctx context.Context, user *entity.User, f *repository.Filter) ([]*entity.Sale, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	sales, err := uc.sales.ListByUser(ctx, user.ID, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", err)
	}
	return sales, nil
}
