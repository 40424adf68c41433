package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stockboard-api/internal/application/analytics"
	appinventory "github.com/jhoicas/stockboard-api/internal/application/inventory"
	"github.com/jhoicas/stockboard-api/internal/infrastructure/memory"
	gql "github.com/jhoicas/stockboard-api/internal/interfaces/graphql"
	"github.com/jhoicas/stockboard-api/pkg/config"
	"github.com/jhoicas/stockboard-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	// Almacén en memoria con los datos semilla. Único punto de mutación:
	// todo acceso de escritura pasa por el repositorio de productos.
	productRepo := memory.NewProductRepository(memory.SeedProducts())
	warehouseRepo := memory.NewWarehouseRepository(memory.SeedWarehouses())
	kpiRepo := memory.NewKPIRepository(memory.GenerateKPISeries(cfg.KPI.RetentionDays))
	log.Info().
		Int("kpi_retention_days", cfg.KPI.RetentionDays).
		Msg("almacén en memoria inicializado")

	queryUC := appinventory.NewQueryUseCase(productRepo)
	summaryUC := appinventory.NewSummaryUseCase(queryUC)
	mutationUC := appinventory.NewMutationUseCase(productRepo, warehouseRepo)
	kpiUC := analytics.NewKPIUseCase(kpiRepo)

	resolver := &gql.Resolver{
		Query:      queryUC,
		Summary:    summaryUC,
		Mutation:   mutationUC,
		KPIs:       kpiUC,
		Warehouses: warehouseRepo,
		Log:        log,
	}
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("construcción del schema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// El consumidor es una SPA en otro origen
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	gql.Mount(app, schema, cfg.App.Env == "development")

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("GraphQL disponible en /graphql")

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
