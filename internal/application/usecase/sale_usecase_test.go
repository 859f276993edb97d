package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/validation"
	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/infrastructure/memory"
)

func newSaleUseCase() *SaleUseCase {
	store := memory.NewSaleStore()
	uc := NewSaleUseCase(store, memory.NewSaleTxRunner(store), validation.New())
	uc.now = newClock().Now
	return uc
}

func mouseSale() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Product:   "Mouse",
		Quantity:  5,
		UnitPrice: dec("89.90"),
		Type:      "Periféricos",
		Status:    "Completed",
	}
}

func TestSaleCreate_CalculaTotalYDueño(t *testing.T) {
	uc := newSaleUseCase()

	out, err := uc.Create(context.Background(), alice, mouseSale())
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(dec("449.50")), "total = %s", out.Total)
	assert.Equal(t, "Alice", out.UserName)
	assert.Equal(t, "alice@example.com", out.UserEmail)
	assert.False(t, out.SaleDate.IsZero())
	assert.Equal(t, out.CreatedAt, out.SaleDate)
}

func TestSaleCreate_Validacion(t *testing.T) {
	uc := newSaleUseCase()
	in := dto.CreateSaleRequest{Product: "", Quantity: 0, UnitPrice: dec("0"), Type: "x", Status: "Concluida"}

	_, err := uc.Create(context.Background(), alice, in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]string{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = fe.Rule
	}
	assert.Equal(t, "notblank", fields["product"])
	assert.Equal(t, "min", fields["quantity"])
	assert.Equal(t, "dgt0", fields["unit_price"])
	assert.Equal(t, "oneof", fields["status"])
}

func TestSaleUpdate_ParcialRecalculaTotal(t *testing.T) {
	uc := newSaleUseCase()
	created, err := uc.Create(context.Background(), alice, mouseSale())
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), alice, created.ID, dto.UpdateSaleRequest{Quantity: ptr(2)})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec("179.80")))
	assert.Equal(t, "Mouse", out.Product)
	assert.Equal(t, "Completed", out.Status)

	out, err = uc.Update(context.Background(), alice, created.ID, dto.UpdateSaleRequest{UnitPrice: ptr(dec("100")), Status: ptr("Pending")})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec("200")))
	assert.Equal(t, "Pending", out.Status)
	assert.True(t, out.UpdatedAt.After(out.CreatedAt))

	stored, err := uc.GetByID(context.Background(), alice, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(stored.UnitPrice.Mul(dec("2"))))
}

func TestSaleUpdate_ConcurrenteNoPierdeCampos(t *testing.T) {
	uc := newSaleUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, alice, mouseSale())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := uc.Update(ctx, alice, created.ID, dto.UpdateSaleRequest{Notes: ptr("entregar el lunes")})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := uc.Update(ctx, alice, created.ID, dto.UpdateSaleRequest{Status: ptr("Pending")})
		assert.NoError(t, err)
	}()
	wg.Wait()

	got, err := uc.GetByID(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "entregar el lunes", got.Notes)
	assert.Equal(t, "Pending", got.Status)
}

func TestSaleGetByID_AjenaEsForbiddenInexistenteEsNotFound(t *testing.T) {
	uc := newSaleUseCase()
	created, err := uc.Create(context.Background(), alice, mouseSale())
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(context.Background(), bob, "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(context.Background(), bob, created.ID, dto.UpdateSaleRequest{Quantity: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(context.Background(), bob, created.ID, dto.UpdateSaleRequest{Quantity: ptr(0), UnitPrice: ptr(dec("-1"))})
	assert.ErrorIs(t, err, domain.ErrForbidden, "la propiedad se comprueba antes que el cuerpo")
	_, err = uc.Update(context.Background(), alice, created.ID, dto.UpdateSaleRequest{UnitPrice: ptr(dec("-1"))})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Delete(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(context.Background(), alice, created.ID)
	assert.NoError(t, err, "la venta sigue existiendo")
}

func TestSaleDelete(t *testing.T) {
	uc := newSaleUseCase()
	created, err := uc.Create(context.Background(), alice, mouseSale())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), alice, created.ID))

	_, err = uc.GetByID(context.Background(), alice, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleList_FiltrosYOrden(t *testing.T) {
	uc := newSaleUseCase()
	ctx := context.Background()
	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	a := mouseSale()
	a.SaleDate = &older
	b := mouseSale()
	b.Product = "Teclado mecánico"
	b.Type = "Accesorios"
	b.Status = "Pending"
	b.SaleDate = &newer
	_, err := uc.Create(ctx, alice, a)
	require.NoError(t, err)
	_, err = uc.Create(ctx, alice, b)
	require.NoError(t, err)
	_, err = uc.Create(ctx, bob, mouseSale())
	require.NoError(t, err)

	all, err := uc.List(ctx, alice, "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Teclado mecánico", all[0].Product, "más reciente primero")

	byProduct, err := uc.List(ctx, alice, "product", "TECLADO")
	require.NoError(t, err)
	require.Len(t, byProduct, 1)

	byStatus, err := uc.List(ctx, alice, "status", "Pending")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)

	byType, err := uc.List(ctx, alice, "type", "periféricos")
	require.NoError(t, err)
	assert.Empty(t, byType, "type es comparación exacta")

	_, err = uc.List(ctx, alice, "notes", "x")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSaleGetByIDs_DescartaAjenasEInexistentes(t *testing.T) {
	uc := newSaleUseCase()
	ctx := context.Background()
	mine, err := uc.Create(ctx, alice, mouseSale())
	require.NoError(t, err)
	theirs, err := uc.Create(ctx, bob, mouseSale())
	require.NoError(t, err)

	out, err := uc.GetByIDs(ctx, alice, []string{mine.ID, theirs.ID, "no-existe", " "})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, mine.ID, out[0].ID)

	empty, err := uc.GetByIDs(ctx, alice, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSaleDistinctValues(t *testing.T) {
	uc := newSaleUseCase()
	ctx := context.Background()
	for _, typ := range []string{"Online", "Loja", "Online"} {
		in := mouseSale()
		in.Type = typ
		_, err := uc.Create(ctx, alice, in)
		require.NoError(t, err)
	}
	other := mouseSale()
	other.Type = "Atacado"
	_, err := uc.Create(ctx, bob, other)
	require.NoError(t, err)

	types, err := uc.DistinctValues(ctx, alice, "type")
	require.NoError(t, err)
	assert.Equal(t, []string{"Loja", "Online"}, types)

	_, err = uc.DistinctValues(ctx, alice, "notes")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSale_SinUsuario(t *testing.T) {
	uc := newSaleUseCase()

	_, err := uc.Create(context.Background(), nil, mouseSale())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.List(context.Background(), nil, "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
