package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/sales-api/internal/application/analytics"
	"github.com/jhoicas/sales-api/internal/application/auth"
	"github.com/jhoicas/sales-api/internal/application/usecase"
	"github.com/jhoicas/sales-api/internal/application/validation"
	"github.com/jhoicas/sales-api/internal/domain/repository"
	"github.com/jhoicas/sales-api/internal/infrastructure/memory"
	"github.com/jhoicas/sales-api/internal/infrastructure/postgres"
	"github.com/jhoicas/sales-api/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/sales-api/internal/interfaces/http"
	"github.com/jhoicas/sales-api/pkg/config"
	"github.com/jhoicas/sales-api/pkg/jwt"
	"github.com/jhoicas/sales-api/pkg/logger"
)

// repositories implementaciones elegidas por STORAGE_DRIVER.
type repositories struct {
	users        repository.UserRepository
	sales        repository.SaleRepository
	salesTx      usecase.SaleTxRunner
	products     repository.ProductRepository
	pointsOfSale repository.PointOfSaleRepository
	close        func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer repos.close()

	tokens, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar JWT")
	}

	v := validation.New()
	authUC := auth.NewAuthUseCase(repos.users, security.NewBcryptHasher(0), tokens, v)
	saleUC := usecase.NewSaleUseCase(repos.sales, repos.salesTx, v)
	productUC := usecase.NewProductUseCase(repos.products, v, cfg.Sales.LowStockDefault)
	pointOfSaleUC := usecase.NewPointOfSaleUseCase(repos.pointsOfSale, v)
	dashboardUC := appanalytics.NewDashboardUseCase(repos.sales, saleUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	// Dentro del logger: un panic llega como error y se registra como 500.
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Sales API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SaleUC:        saleUC,
		ProductUC:     productUC,
		PointOfSaleUC: pointOfSaleUC,
		DashboardUC:   dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		sales := memory.NewSaleStore()
		return &repositories{
			users:        memory.NewUserStore(),
			sales:        sales,
			salesTx:      memory.NewSaleTxRunner(sales),
			products:     memory.NewProductStore(),
			pointsOfSale: memory.NewPointOfSaleStore(),
			close:        func() {},
		}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &repositories{
		users:        postgres.NewUserRepository(pool),
		sales:        postgres.NewSaleRepository(pool),
		salesTx:      postgres.NewTxRunner(pool),
		products:     postgres.NewProductRepository(pool),
		pointsOfSale: postgres.NewPointOfSaleRepository(pool),
		close:        pool.Close,
	}, nil
}
