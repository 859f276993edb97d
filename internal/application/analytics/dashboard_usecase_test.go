package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/usecase"
	"github.com/jhoicas/sales-api/internal/application/validation"
	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
	"github.com/jhoicas/sales-api/internal/infrastructure/memory"
)

var (
	userA = &entity.User{ID: "user-a", Name: "A", Email: "a@example.com", Active: true}
	userB = &entity.User{ID: "user-b", Name: "B", Email: "b@example.com", Active: true}
)

func newDashboard() *DashboardUseCase {
	store := memory.NewSaleStore()
	return NewDashboardUseCase(store, usecase.NewSaleUseCase(store, memory.NewSaleTxRunner(store), validation.New()))
}

func createSale(t *testing.T, uc *DashboardUseCase, user *entity.User, product, typ, status, price string, qty int) {
	t.Helper()
	_, err := uc.CreateSale(context.Background(), user, dto.CreateSaleRequest{
		Product:   product,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
		Type:      typ,
		Status:    status,
	})
	require.NoError(t, err)
}

func TestCardSummary_EscenarioMouse(t *testing.T) {
	uc := newDashboard()
	createSale(t, uc, userA, "Mouse", "Periféricos", "Completed", "89.90", 5)
	createSale(t, uc, userB, "Monitor", "Vídeo", "Completed", "1000", 1)

	out, err := uc.CardSummary(context.Background(), userA)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Count)
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("449.50")))
	assert.True(t, out.AverageTicket.Equal(decimal.RequireFromString("449.50")))
	assert.True(t, out.TotalCompletedValue.Equal(out.TotalValue))
}

func TestCardSummary_IdempotenteSinEscrituras(t *testing.T) {
	uc := newDashboard()
	createSale(t, uc, userA, "Mouse", "Periféricos", "Completed", "89.90", 5)
	createSale(t, uc, userA, "Cabo", "Acessórios", "Pending", "12.35", 3)
	createSale(t, uc, userA, "Hub", "Acessórios", "Cancelled", "50", 1)

	first, err := uc.CardSummary(context.Background(), userA)
	require.NoError(t, err)
	second, err := uc.CardSummary(context.Background(), userA)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Count, first.CompletedCount+first.PendingCount+first.CancelledCount)
}

func TestGroupedByType_SoloDelUsuario(t *testing.T) {
	uc := newDashboard()
	createSale(t, uc, userA, "Mouse", "Periféricos", "Completed", "10", 1)
	createSale(t, uc, userA, "Teclado", "Periféricos", "Pending", "20", 1)
	createSale(t, uc, userB, "Monitor", "Vídeo", "Completed", "1000", 1)

	out, err := uc.GroupedByType(context.Background(), userA)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "Periféricos", out[0].Type)
	assert.Equal(t, int64(2), out[0].Count)
	assert.True(t, out[0].TotalValue.Equal(decimal.NewFromInt(30)))
}

func TestDashboardListados(t *testing.T) {
	uc := newDashboard()
	ctx := context.Background()
	createSale(t, uc, userA, "Mouse", "Online", "Completed", "10", 1)
	createSale(t, uc, userA, "Teclado", "Loja", "Pending", "20", 1)
	createSale(t, uc, userB, "Monitor", "Online", "Completed", "1000", 1)

	all, err := uc.Sales(ctx, userA)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	online, err := uc.SalesByType(ctx, userA, "Online")
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, "Mouse", online[0].Product)

	pending, err := uc.SalesByStatus(ctx, userA, "Pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Teclado", pending[0].Product)

	types, err := uc.Types(ctx, userA)
	require.NoError(t, err)
	assert.Equal(t, []string{"Loja", "Online"}, types)
}

func TestDashboard_SinUsuario(t *testing.T) {
	uc := newDashboard()

	_, err := uc.CardSummary(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = uc.Types(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
