package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/database"

	"catalog-backend/internal/domains/category"
	categoryHandler "catalog-backend/internal/domains/category/handler"
	categoryRepo "catalog-backend/internal/domains/category/repository"
	categoryService "catalog-backend/internal/domains/category/service"

	"catalog-backend/internal/domains/product"
	productHandler "catalog-backend/internal/domains/product/handler"
	productRepo "catalog-backend/internal/domains/product/repository"
	productService "catalog-backend/internal/domains/product/service"

	"catalog-backend/internal/domains/user"
	userHandler "catalog-backend/internal/domains/user/handler"
	userRepo "catalog-backend/internal/domains/user/repository"
	userService "catalog-backend/internal/domains/user/service"

	"catalog-backend/internal/domains/stock"
	stockService "catalog-backend/internal/domains/stock/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the full dependency graph of the application.
// Everything in here is a singleton created once at startup.
type Container struct {
	// Infrastructure layer, shared across all domains.
	Config *config.Config
	DB     *database.PostgresDB

	// Repository layer (data access).
	CategoryRepo category.CategoryRepository
	ProductRepo  product.ProductRepository
	UserRepo     user.UserRepository

	// Service layer (business logic).
	CategoryService category.CategoryService
	ProductService  product.ProductService
	UserService     user.UserService
	StockNotifier   stock.Notifier
	StockService    *stockService.StockService

	// Handler layer (HTTP).
	CategoryHandler *categoryHandler.CategoryHandler
	ProductHandler  *productHandler.ProductHandler
	UserHandler     *userHandler.UserHandler
}

// NewContainer builds the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 4: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 5: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.ProductRepo = productRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	// The product repository doubles as the category delete guard: a
	// category with products attached may not be removed.
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.ProductRepo)

	c.ProductService = productService.NewProductService(c.ProductRepo)

	c.UserService = userService.NewUserService(c.UserRepo, c.Config.App.BcryptCost)

	c.StockNotifier = stock.NewLogNotifier()
	c.StockService = stockService.NewStockService(c.ProductRepo, c.StockNotifier)
}

func (c *Container) initHandlers() {
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
