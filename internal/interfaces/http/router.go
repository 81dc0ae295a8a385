package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/auth"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/application/report"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	CategoryUC  *usecase.CategoryUseCase
	BatchUC     *usecase.BatchUseCase
	RecorderUC  *inventory.RecordMovementUseCase
	BalanceUC   *inventory.BalanceUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Products (protegido; borrar es solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Post("/:id/image", productHandler.UploadImage)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Batches (protegido, solo lectura; se crean vía movimientos)
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Get("/", batchHandler.ListByProduct)
	batches.Get("/:id", batchHandler.GetByID)

	// Inventory: ledger y saldos (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecorderUC, deps.BalanceUC)
	invGroup.Post("/transactions", inventoryHandler.RecordTransaction)
	invGroup.Get("/balances", inventoryHandler.Balances)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/current-stock", reportHandler.CurrentStock)
	reports.Get("/movements", reportHandler.Movements)
	reports.Get("/export", reportHandler.Export)
}
