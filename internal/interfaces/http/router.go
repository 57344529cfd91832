package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/invorya/stockwatch/internal/application/alerts"
	"github.com/invorya/stockwatch/internal/application/bundle"
	"github.com/invorya/stockwatch/internal/application/catalog"
	"github.com/invorya/stockwatch/internal/application/inventory"
	"github.com/invorya/stockwatch/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProductTypeUC *usecase.ProductTypeUseCase
	ProductUC     *usecase.ProductUseCase
	SalesUC       *usecase.SalesUseCase
	Onboarding    *catalog.OnboardingUseCase
	Ledger        *inventory.LedgerUseCase
	Bundles       *bundle.Resolver
	Alerts        *alerts.AlertsUseCase
	Log           zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies (y sus recursos anidados: bodegas y alertas)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Delete("/:id", companyHandler.Delete)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	companies.Get("/:id/warehouses", warehouseHandler.ListByCompany)

	alertsHandler := NewAlertsHandler(deps.Alerts, deps.Log)
	companies.Get("/:id/low-stock-alerts", alertsHandler.GetLowStock)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Product types
	productTypes := api.Group("/product-types")
	productTypeHandler := NewProductTypeHandler(deps.ProductTypeUC, deps.Log)
	productTypes.Post("/", productTypeHandler.Create)
	productTypes.Get("/:id", productTypeHandler.GetByID)

	// Products (alta transaccional + lecturas + composición de bundles)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Onboarding, deps.ProductUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	bundleHandler := NewBundleHandler(deps.Bundles, deps.Log)
	products.Put("/:id/components", bundleHandler.ReplaceComponents)
	products.Get("/:id/components/resolved", bundleHandler.GetResolved)

	// Inventory (ajustes, bitácora y auditoría)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Log)
	invGroup.Post("/:id/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/:id/ledger", inventoryHandler.GetLedger)
	invGroup.Get("/:id/audit", inventoryHandler.Audit)

	// Sales feed
	salesHandler := NewSalesHandler(deps.SalesUC, deps.Log)
	api.Post("/sales", salesHandler.Record)
}
