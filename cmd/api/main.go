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
	appledger "github.com/jhoicas/CampoStock-api/internal/application/ledger"
	"github.com/jhoicas/CampoStock-api/internal/application/reference"
	"github.com/jhoicas/CampoStock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/CampoStock-api/internal/interfaces/http"
	"github.com/jhoicas/CampoStock-api/pkg/config"
	"github.com/jhoicas/CampoStock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
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

	// Repositorios atados al pool (lecturas); las mutaciones van por TxRunner.
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	txnRepo := postgres.NewStockTransactionRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	aggRepo := postgres.NewProductAggregateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	submitUC := appledger.NewSubmitTransactionUseCase(txRunner, storeRepo, productRepo, log)
	approvalUC := appledger.NewApprovalUseCase(txRunner, log)
	queryUC := appledger.NewQueryUseCase(txnRepo, ledgerRepo, aggRepo)
	referenceUC := reference.NewUseCase(storeRepo, productRepo, employeeRepo, visitRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CampoStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Stock:     httpRouter.NewStockHandler(submitUC, approvalUC, queryUC),
		Ledger:    httpRouter.NewLedgerHandler(queryUC),
		Reference: httpRouter.NewReferenceHandler(referenceUC),
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
