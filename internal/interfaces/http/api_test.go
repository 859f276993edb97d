package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/sales-api/internal/application/analytics"
	"github.com/jhoicas/sales-api/internal/application/auth"
	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/usecase"
	"github.com/jhoicas/sales-api/internal/application/validation"
	"github.com/jhoicas/sales-api/internal/infrastructure/memory"
	"github.com/jhoicas/sales-api/internal/infrastructure/security"
	apphttp "github.com/jhoicas/sales-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/sales-api/pkg/jwt"
	"github.com/jhoicas/sales-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "sales-api-test"
)

// testEnv app completa sobre almacenamiento en memoria.
type testEnv struct {
	app   *fiber.App
	users *memory.UserStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tokens, err := pkgjwt.NewService(testJWTSecret, testIssuer, time.Hour)
	require.NoError(t, err)

	v := validation.New()
	users := memory.NewUserStore()
	sales := memory.NewSaleStore()
	saleUC := usecase.NewSaleUseCase(sales, memory.NewSaleTxRunner(sales), v)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(users, security.NewBcryptHasher(bcrypt.MinCost), tokens, v),
		SaleUC:        saleUC,
		ProductUC:     usecase.NewProductUseCase(memory.NewProductStore(), v, usecase.DefaultLowStockThreshold),
		PointOfSaleUC: usecase.NewPointOfSaleUseCase(memory.NewPointOfSaleStore(), v),
		DashboardUC:   appanalytics.NewDashboardUseCase(sales, saleUC),
	})
	return &testEnv{app: app, users: users}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// signup registra y loguea un usuario; devuelve token e ID.
func (e *testEnv) signup(t *testing.T, name, email string) (string, string) {
	t.Helper()
	status, _ := e.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := e.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": "secreto123",
	})
	require.Equal(t, http.StatusOK, status)
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &login))
	return login.Token, login.User.ID
}

func errorCode(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestAuth_RegistroLoginYMe(t *testing.T) {
	env := newTestEnv(t)
	token, id := env.signup(t, "Ana", "Ana@Example.com ")

	status, body := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, id, me.ID)
	assert.Equal(t, "ana@example.com", me.Email)
	assert.NotContains(t, string(body), "password")

	status, body = env.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Otra", "email": "ana@example.com", "password": "secreto123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, body).Code)

	status, body = env.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Eva", "email": "eva@example.com", "password": strings.Repeat("é", 40),
	})
	assert.Equal(t, http.StatusBadRequest, status)
	verr := errorCode(t, body)
	assert.Equal(t, "VALIDATION", verr.Code)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "password", verr.Fields[0].Field)

	status, body = env.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ana@example.com", "password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, body).Code)

	status, _ = env.do(t, http.MethodGet, "/api/auth/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthMiddleware_Tokens(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/sales", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, body).Code)

	status, body = env.do(t, http.MethodGet, "/api/sales", "token.invalido.aqui", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, body).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token abc")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	env := newTestEnv(t)
	_, id := env.signup(t, "Ana", "ana@example.com")

	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := pkgjwt.NewService(testJWTSecret, testIssuer, time.Hour, pkgjwt.WithClock(past))
	require.NoError(t, err)
	expired, err := old.Issue(id, "ana@example.com")
	require.NoError(t, err)

	status, body := env.do(t, http.MethodGet, "/api/auth/me", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, body).Code)
}

func TestAuthMiddleware_UsuarioEliminado(t *testing.T) {
	env := newTestEnv(t)
	token, id := env.signup(t, "Ana", "ana@example.com")
	require.NoError(t, env.users.Delete(context.Background(), id))

	status, body := env.do(t, http.MethodGet, "/api/sales", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, body).Code)
}

func TestSales_PropiedadYValidacion(t *testing.T) {
	env := newTestEnv(t)
	ana, _ := env.signup(t, "Ana", "ana@example.com")
	bruno, _ := env.signup(t, "Bruno", "bruno@example.com")

	status, body := env.do(t, http.MethodPost, "/api/sales", ana, fiber.Map{
		"product": "Mouse", "quantity": 5, "unit_price": "89.90", "type": "Periféricos", "status": "Completed",
	})
	require.Equal(t, http.StatusCreated, status)
	var created dto.SaleDetailResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.True(t, created.Total.Equal(decimal.RequireFromString("449.50")))
	assert.Equal(t, "ana@example.com", created.UserEmail)

	status, body = env.do(t, http.MethodGet, "/api/sales/"+created.ID, bruno, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errorCode(t, body).Code)

	status, _ = env.do(t, http.MethodGet, "/api/sales/00000000-0000-0000-0000-000000000000", ana, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.do(t, http.MethodPost, "/api/sales", ana, fiber.Map{
		"product": " ", "quantity": 0, "unit_price": "10", "type": "Online", "status": "Aberta",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	verr := errorCode(t, body)
	assert.Equal(t, "VALIDATION", verr.Code)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Subset(t, fields, []string{"product", "quantity", "status"})

	status, body = env.do(t, http.MethodPut, "/api/sales/"+created.ID, ana, fiber.Map{"quantity": 2})
	require.Equal(t, http.StatusOK, status)
	var updated dto.SaleDetailResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("179.80")))
	assert.Equal(t, "Mouse", updated.Product)

	status, body = env.do(t, http.MethodGet, "/api/sales/filter?ids="+created.ID+",otro", bruno, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(body))

	status, _ = env.do(t, http.MethodDelete, "/api/sales/"+created.ID, bruno, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = env.do(t, http.MethodDelete, "/api/sales/"+created.ID, ana, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestSales_CuerpoInvalidoYCampoDesconocido(t *testing.T) {
	env := newTestEnv(t)
	ana, _ := env.signup(t, "Ana", "ana@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString("{no es json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+ana)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	status, body := env.do(t, http.MethodGet, "/api/sales/distinct/notes", ana, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errorCode(t, body).Code)
}

func TestProducts_CodigoDuplicadoYStockBajo(t *testing.T) {
	env := newTestEnv(t)
	ana, _ := env.signup(t, "Ana", "ana@example.com")
	bruno, _ := env.signup(t, "Bruno", "bruno@example.com")

	product := fiber.Map{"code": "MS-01", "name": "Mouse", "category": "Periféricos", "price": "89.90", "stock": 3}
	status, _ := env.do(t, http.MethodPost, "/api/products", ana, product)
	require.Equal(t, http.StatusCreated, status)

	status, body := env.do(t, http.MethodPost, "/api/products", ana, product)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE_CODE", errorCode(t, body).Code)

	status, _ = env.do(t, http.MethodPost, "/api/products", bruno, product)
	assert.Equal(t, http.StatusCreated, status, "el código es único por usuario")

	status, body = env.do(t, http.MethodGet, "/api/products/low-stock", ana, nil)
	require.Equal(t, http.StatusOK, status)
	var low []dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &low))
	require.Len(t, low, 1)
	assert.Equal(t, "MS-01", low[0].Code)

	status, _ = env.do(t, http.MethodGet, "/api/products/low-stock?threshold=abc", ana, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.do(t, http.MethodGet, "/api/products/code/MS-01", ana, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.do(t, http.MethodGet, "/api/products/code/NADA", ana, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.do(t, http.MethodGet, "/api/products/categories", ana, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["Periféricos"]`, string(body))
}

func TestPointsOfSale_FiltroYCiudades(t *testing.T) {
	env := newTestEnv(t)
	ana, _ := env.signup(t, "Ana", "ana@example.com")

	for _, p := range []fiber.Map{
		{"name": "Loja Centro", "address": "Praça da Sé, 10", "city": "São Paulo", "state": "sp", "type": "Loja"},
		{"name": "Quiosque Sul", "address": "Rua XV, 200", "city": "Curitiba", "state": "PR", "type": "Quiosque"},
	} {
		status, body := env.do(t, http.MethodPost, "/api/pdv", ana, p)
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := env.do(t, http.MethodGet, "/api/pdv/filter/name?value=loja", ana, nil)
	require.Equal(t, http.StatusOK, status)
	var found []dto.PointOfSaleResponse
	require.NoError(t, json.Unmarshal(body, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "SP", found[0].State)

	status, body = env.do(t, http.MethodGet, "/api/pdv/cities", ana, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["Curitiba","São Paulo"]`, string(body))

	status, _ = env.do(t, http.MethodGet, "/api/pdv/filter/phone?value=1", ana, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDashboard_Cards(t *testing.T) {
	env := newTestEnv(t)
	ana, _ := env.signup(t, "Ana", "ana@example.com")
	bruno, _ := env.signup(t, "Bruno", "bruno@example.com")

	status, _ := env.do(t, http.MethodPost, "/api/dashboard/sales", ana, fiber.Map{
		"product": "Mouse", "quantity": 5, "unit_price": "89.90", "type": "Periféricos", "status": "Completed",
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = env.do(t, http.MethodPost, "/api/dashboard/sales", bruno, fiber.Map{
		"product": "Monitor", "quantity": 1, "unit_price": "1000", "type": "Vídeo", "status": "Completed",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := env.do(t, http.MethodGet, "/api/dashboard/cards", ana, nil)
	require.Equal(t, http.StatusOK, status)
	var cards dto.CardSummaryDTO
	require.NoError(t, json.Unmarshal(body, &cards))
	assert.Equal(t, int64(1), cards.Count)
	assert.True(t, cards.TotalValue.Equal(decimal.RequireFromString("449.50")))
	assert.True(t, cards.AverageTicket.Equal(decimal.RequireFromString("449.50")))

	status, body = env.do(t, http.MethodGet, "/api/dashboard/sales/by-type", ana, nil)
	require.Equal(t, http.StatusOK, status)
	var grouped []dto.SalesByTypeDTO
	require.NoError(t, json.Unmarshal(body, &grouped))
	require.Len(t, grouped, 1)
	assert.Equal(t, "Periféricos", grouped[0].Type)

	status, body = env.do(t, http.MethodGet, "/api/dashboard/types", bruno, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["Vídeo"]`, string(body))
}

func TestRutaInexistente(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/nada", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, body).Code)
}
