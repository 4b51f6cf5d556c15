package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/woodcraft-ug/woodcraft-api/internal/application/analytics"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/auth"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/sales"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/usecase"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	CheckoutUC  *sales.CheckoutUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportsUC   *appanalytics.ReportsUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Showroom
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", RequireRole(entity.RoleManager), productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/stock", productHandler.UpdateStock)

	// Warehouse (wood stock)
	wood := protected.Group("/wood-products")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	wood.Get("/", warehouseHandler.List)
	wood.Get("/:id", warehouseHandler.GetByID)
	wood.Put("/:id/stock", warehouseHandler.UpdateStock)
	protected.Get("/warehouse/summary", warehouseHandler.Summary)

	// Sales
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.CheckoutUC)
	salesGroup.Post("/quote", salesHandler.Quote)
	salesGroup.Get("/today", salesHandler.Today)
	salesGroup.Post("/", salesHandler.Complete)
	salesGroup.Get("/", salesHandler.List)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/metrics", customerHandler.Metrics)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Delete("/:id", customerHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/metrics", supplierHandler.Metrics)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Dashboard (role-aware content, any authenticated user)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Reports (manager only, like the manager-gated navigation)
	reports := protected.Group("/reports", RequireRole(entity.RoleManager))
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reports.Get("/overview", reportsHandler.Overview)
	reports.Get("/sales", reportsHandler.Sales)
	reports.Get("/inventory", reportsHandler.Inventory)
	reports.Get("/products", reportsHandler.Products)
	reports.Get("/attendants", reportsHandler.Attendants)
	reports.Post("/export", reportsHandler.Export)
}
