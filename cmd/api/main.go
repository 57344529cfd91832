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
	"github.com/redis/go-redis/v9"

	"github.com/invorya/stockwatch/internal/application/alerts"
	"github.com/invorya/stockwatch/internal/application/bundle"
	"github.com/invorya/stockwatch/internal/application/catalog"
	"github.com/invorya/stockwatch/internal/application/inventory"
	"github.com/invorya/stockwatch/internal/application/usecase"
	"github.com/invorya/stockwatch/internal/infrastructure/postgres"
	"github.com/invorya/stockwatch/internal/infrastructure/rediscache"
	httpRouter "github.com/invorya/stockwatch/internal/interfaces/http"
	"github.com/invorya/stockwatch/pkg/config"
	"github.com/invorya/stockwatch/pkg/logger"
)

// @title        Stockwatch API
// @version      1.0
// @description  Plataforma multi-tenant de inventario: mutaciones transaccionales con bitácora y motor de alertas de stock bajo.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Bootstrap {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	// Cache de alertas: opcional, REDIS_ADDR vacío lo deja apagado. Un Redis
	// caído no impide arrancar; el cache es best-effort.
	var alertsCache alerts.AlertsCache
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no responde, cache de alertas en best-effort")
		} else {
			log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de alertas habilitado")
		}
		alertsCache = rediscache.NewAlertsCache(redisClient, cfg.Alerts.CacheTTL)
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productTypeRepo := postgres.NewProductTypeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	bundleRepo := postgres.NewBundleRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	alertsRepo := postgres.NewAlertsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, companyRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productTypeUC := usecase.NewProductTypeUseCase(productTypeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	salesUC := usecase.NewSalesUseCase(salesRepo, productRepo, warehouseRepo)
	onboardingUC := catalog.NewOnboardingUseCase(txRunner, warehouseRepo)
	ledgerUC := inventory.NewLedgerUseCase(txRunner, inventoryRepo, ledgerRepo)
	bundleResolver := bundle.NewResolver(bundleRepo, productRepo)
	alertsUC := alerts.NewAlertsUseCase(alertsRepo, alertsCache, cfg.Alerts.WindowDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/swagger
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "swagger",
		Title:    "Stockwatch API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		WarehouseUC:   warehouseUC,
		SupplierUC:    supplierUC,
		ProductTypeUC: productTypeUC,
		ProductUC:     productUC,
		SalesUC:       salesUC,
		Onboarding:    onboardingUC,
		Ledger:        ledgerUC,
		Bundles:       bundleResolver,
		Alerts:        alertsUC,
		Log:           log,
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
