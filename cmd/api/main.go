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

	appanalytics "github.com/woodcraft-ug/woodcraft-api/internal/application/analytics"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/auth"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/sales"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/usecase"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/stock"
	httpRouter "github.com/woodcraft-ug/woodcraft-api/internal/interfaces/http"
	"github.com/woodcraft-ug/woodcraft-api/internal/storage/memory"
	"github.com/woodcraft-ug/woodcraft-api/pkg/config"
	"github.com/woodcraft-ug/woodcraft-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Fixture-backed store; everything lives for the process lifetime.
	store := memory.New()

	thresholds := stock.Thresholds{
		Showroom:  cfg.Stock.LowShowroom,
		Warehouse: cfg.Stock.LowWarehouse,
	}

	productRepo := store.Products()
	woodRepo := store.WoodProducts()
	saleRepo := store.Sales()
	customerRepo := store.Customers()
	supplierRepo := store.Suppliers()
	userRepo := store.Users()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, thresholds.Showroom)
	warehouseUC := usecase.NewWarehouseUseCase(woodRepo, thresholds.Warehouse)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	checkoutUC := sales.NewCheckoutUseCase(productRepo, woodRepo, saleRepo, customerRepo, cfg.Sales.DeliverySurchargePct)
	dashboardUC := appanalytics.NewDashboardUseCase(saleRepo, productRepo, woodRepo, thresholds)
	reportsUC := appanalytics.NewReportsUseCase(saleRepo, productRepo, woodRepo, thresholds)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Woodcraft API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		CheckoutUC:  checkoutUC,
		DashboardUC: dashboardUC,
		ReportsUC:   reportsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
