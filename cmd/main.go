package main

import (
	"context"
	"fmt"
	"log"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stockit/internal/caching"
	"stockit/internal/common"
	"stockit/internal/config"
	"stockit/internal/handlers"
	"stockit/internal/jobs/background"
	"stockit/internal/middleware"
	"stockit/internal/repositories"
	"stockit/internal/services"
	"stockit/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	fileSvc, err := services.NewMinioFileService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	if err := fileSvc.EnsureBucketExists(context.Background(), cfg.FilesBucket); err != nil {
		log.Printf("WARN: could not ensure files bucket %s: %v", cfg.FilesBucket, err)
	}

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Repositories
	productRepo := repositories.NewProductRepository(pool)
	consumptionRepo := repositories.NewConsumptionRepository(pool)
	documentRepo := repositories.NewDocumentRepository(pool)
	historyRepo := repositories.NewLocationHistoryRepository(pool)

	// Services
	inventorySvc := services.NewInventoryService(productRepo, cacheSvc)
	consumptionSvc := services.NewConsumptionService(consumptionRepo, productRepo, cacheSvc)
	documentSvc := services.NewDocumentService(documentRepo, productRepo)
	historySvc := services.NewLocationHistoryService(historyRepo)
	authSvc := services.NewAuthService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPassword)

	// Handlers
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc, historySvc)
	consumptionHandlers := handlers.NewConsumptionHandlers(consumptionSvc)
	documentHandlers := handlers.NewDocumentHandlers(documentSvc)
	fileHandlers := handlers.NewFileHandlers(fileSvc, cfg.FilesBucket)
	authHandlers := handlers.NewAuthHandlers(authSvc)

	// Background jobs: startup history backfill + periodic low stock scan
	scheduler, err := background.NewJobScheduler(historySvc, inventorySvc, cfg.LowStockThreshold)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop job scheduler: %v", err)
		}
	}()

	e := echo.New()
	e.Validator = common.NewRequestValidator()

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", func(c echo.Context) error {
		return handlers.ReadinessCheck(c, pool)
	})

	// Shared files and report template
	e.GET("/files/*", fileHandlers.ServeFile)
	e.GET("/download/proces-verbal", fileHandlers.DownloadProcesVerbal)

	api := e.Group("/api")
	api.POST("/auth/login", authHandlers.Login)

	protected := api.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(cfg.JWTSecret)))

	// Inventory routes
	protected.GET("/inventory", inventoryHandlers.ListProducts)
	protected.POST("/inventory", inventoryHandlers.CreateProduct)
	protected.GET("/inventory/:id", inventoryHandlers.GetProduct)
	protected.PUT("/inventory/:id", inventoryHandlers.UpdateProduct)
	protected.POST("/inventory/scan", inventoryHandlers.ScanBarcode)
	protected.POST("/inventory/:id/move", inventoryHandlers.MoveProduct)
	protected.GET("/inventory/:id/history", inventoryHandlers.ProductHistory)

	// Consumption routes
	protected.GET("/consum", consumptionHandlers.ListConsumptions)
	protected.POST("/consum", consumptionHandlers.RecordConsumption)

	// Document routes
	protected.POST("/inventory/:id/documents", documentHandlers.UploadDocument)
	protected.GET("/inventory/:id/documents", documentHandlers.ListDocuments)
	protected.GET("/documents/:docId", documentHandlers.FetchDocument)
	protected.DELETE("/documents/:docId", documentHandlers.DeleteDocument)

	log.Printf("StockIt server v%s starting on port %d", version, cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
