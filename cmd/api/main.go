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

	"github.com/jhoicas/Kardex-api/internal/application/auth"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/application/report"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	infracache "github.com/jhoicas/Kardex-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Kardex-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/postgres"
	infrastorage "github.com/jhoicas/Kardex-api/internal/infrastructure/storage"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/Kardex-api/internal/interfaces/http"
	"github.com/jhoicas/Kardex-api/pkg/config"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	viewRepo := postgres.NewBalanceViewRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de saldos (Redis). REDIS_ADDR vacío lo desactiva: los casos de uso
	// toleran un cache nil y leen siempre de la vista.
	var balanceCache inventory.BalanceCache
	if cfg.Cache.Addr != "" {
		redisCache, err := infracache.NewRedisBalanceCache(ctx, cfg.Cache)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		balanceCache = redisCache
		log.Info().Str("addr", cfg.Cache.Addr).Msg("cache de saldos habilitado")
	}

	// Storage S3-compatible para imágenes de producto. STORAGE_BUCKET vacío lo
	// desactiva: el endpoint de subida responde 503.
	var imageStorage usecase.ImageStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := infrastorage.NewS3ImageStorage(cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("configuración de storage")
		}
		imageStorage = s3Storage
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("storage de imágenes habilitado")
	}

	recorderUC := inventory.NewRecordMovementUseCase(txRunner, productRepo, warehouseRepo, balanceCache)
	balanceUC := inventory.NewBalanceUseCase(txnRepo, productRepo, viewRepo, balanceCache)
	productUC := usecase.NewProductUseCase(productRepo, balanceUC, imageStorage)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	batchUC := usecase.NewBatchUseCase(batchRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoLedgerGenerator(cfg.PDF.FontDir)
	xmlExporter := xmlexport.NewEtreeExporter()
	reportUC := report.NewReportUseCase(txnRepo, viewRepo, pdfGenerator, xmlExporter)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports PDF pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kardex API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		CategoryUC:  categoryUC,
		BatchUC:     batchUC,
		RecorderUC:  recorderUC,
		BalanceUC:   balanceUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
