package container

import (
	"context"
	"fmt"

	"collection-backend/internal/collection"
	"collection-backend/internal/config"
	infraCache "collection-backend/internal/infrastructure/cache"
	"collection-backend/internal/infrastructure/database"
	"collection-backend/internal/infrastructure/images"
	"collection-backend/internal/infrastructure/queue"
	"collection-backend/pkg/cache"
	"collection-backend/pkg/jwt"
	"collection-backend/pkg/logger"

	"collection-backend/internal/domains/category"
	categoryHandler "collection-backend/internal/domains/category/handler"
	categoryRepo "collection-backend/internal/domains/category/repository"
	categoryService "collection-backend/internal/domains/category/service"

	"collection-backend/internal/domains/item"
	itemHandler "collection-backend/internal/domains/item/handler"
	itemRepo "collection-backend/internal/domains/item/repository"
	itemService "collection-backend/internal/domains/item/service"

	"collection-backend/internal/domains/user"
	userHandler "collection-backend/internal/domains/user/handler"
	userRepo "collection-backend/internal/domains/user/repository"
	userService "collection-backend/internal/domains/user/service"

	"collection-backend/internal/domains/hero"
	heroHandler "collection-backend/internal/domains/hero/handler"
	heroRepo "collection-backend/internal/domains/hero/repository"
	heroService "collection-backend/internal/domains/hero/service"

	"collection-backend/internal/domains/image"
	imageHandler "collection-backend/internal/domains/image/handler"

	"collection-backend/internal/domains/manufacturer"
	manufacturerHandler "collection-backend/internal/domains/manufacturer/handler"

	reportHandler "collection-backend/internal/domains/report/handler"
)

// Container wires the whole dependency graph: config, infrastructure,
// repositories, services, handlers. Built once at startup, torn down
// in Close.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Queue      *queue.Client
	ImageStore images.Store
	Collection *collection.Store

	UserRepo     user.Repository
	CategoryRepo category.Repository
	ItemRepo     item.Repository
	HeroRepo     hero.Repository

	UserService         user.Service
	CategoryService     category.Service
	ItemService         item.Service
	HeroService         hero.Service
	ImageService        image.Service
	ManufacturerService manufacturer.Service

	UserHandler         *userHandler.UserHandler
	CategoryHandler     *categoryHandler.CategoryHandler
	ItemHandler         *itemHandler.ItemHandler
	HeroHandler         *heroHandler.HeroHandler
	ImageHandler        *imageHandler.ImageHandler
	ManufacturerHandler *manufacturerHandler.ManufacturerHandler
	ReportHandler       *reportHandler.ReportHandler
}

// NewContainer builds the graph in dependency order: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========== Infrastructure ==========
	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		// Cache is an optimization, not a dependency.
		logger.Error("Redis unavailable, continuing without cache", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	store, err := images.NewStore(cfg.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to init image store: %w", err)
	}
	c.ImageStore = store

	// ========== Repositories ==========
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(c.DB.Pool)
	c.ItemRepo = itemRepo.NewPostgresRepository(c.DB.Pool)
	c.HeroRepo = heroRepo.NewPostgresRepository(c.DB.Pool)

	// ========== Collection snapshot ==========
	c.Collection = collection.NewStore(c.CategoryRepo, c.ItemRepo)
	if err := c.Collection.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load collection snapshot: %w", err)
	}

	// ========== Services ==========
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Collection, c.Queue)
	c.ItemService = itemService.NewItemService(c.ItemRepo, c.CategoryRepo, c.Collection, c.Cache, c.Queue)
	c.HeroService = heroService.NewHeroService(c.HeroRepo)
	c.ImageService = image.NewImageService(c.ImageStore)
	c.ManufacturerService = manufacturer.NewService(c.ItemRepo, c.Cache)

	// ========== Handlers ==========
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.HeroHandler = heroHandler.NewHeroHandler(c.HeroService)
	c.ImageHandler = imageHandler.NewImageHandler(c.ImageService)
	c.ManufacturerHandler = manufacturerHandler.NewManufacturerHandler(c.ManufacturerService)
	c.ReportHandler = reportHandler.NewReportHandler(c.Collection, cfg.Collection)

	logger.Info("Container initialized", map[string]interface{}{
		"environment":   cfg.App.Environment,
		"imageProvider": cfg.Images.Provider,
	})
	return c, nil
}

// Close releases infrastructure connections in reverse order.
func (c *Container) Close() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("Failed to close queue client", err)
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close cache", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
