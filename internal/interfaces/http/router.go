package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/sales-api/internal/application/analytics"
	"github.com/jhoicas/sales-api/internal/application/auth"
	"github.com/jhoicas/sales-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SaleUC        *usecase.SaleUseCase
	ProductUC     *usecase.ProductUseCase
	PointOfSaleUC *usecase.PointOfSaleUseCase
	DashboardUC   *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
// Las rutas estáticas de cada grupo van antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.AuthUC)

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/health", authHandler.Health)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Sales (protegido)
	sales := api.Group("/sales", requireAuth)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/columns", saleHandler.Columns)
	sales.Get("/filter", saleHandler.Filter)
	sales.Get("/distinct/:field", saleHandler.Distinct)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Products (protegido)
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/columns", productHandler.Columns)
	products.Get("/categories", productHandler.Categories)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/filter/:field", productHandler.Filter)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Puntos de venta (protegido)
	pdv := api.Group("/pdv", requireAuth)
	pdvHandler := NewPointOfSaleHandler(deps.PointOfSaleUC)
	pdv.Get("/columns", pdvHandler.Columns)
	pdv.Get("/types", pdvHandler.Types)
	pdv.Get("/cities", pdvHandler.Cities)
	pdv.Get("/filter/:field", pdvHandler.Filter)
	pdv.Get("/", pdvHandler.List)
	pdv.Post("/", pdvHandler.Create)
	pdv.Get("/:id", pdvHandler.GetByID)
	pdv.Put("/:id", pdvHandler.Update)
	pdv.Delete("/:id", pdvHandler.Delete)

	// Dashboard (protegido)
	dashboard := api.Group("/dashboard", requireAuth)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/cards", dashboardHandler.Cards)
	dashboard.Get("/sales/by-type", dashboardHandler.GroupedByType)
	dashboard.Get("/sales/type/:type", dashboardHandler.SalesByType)
	dashboard.Get("/sales/status/:status", dashboardHandler.SalesByStatus)
	dashboard.Get("/sales", dashboardHandler.Sales)
	dashboard.Post("/sales", dashboardHandler.CreateSale)
	dashboard.Get("/types", dashboardHandler.Types)
}
