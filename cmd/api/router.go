package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"collection-backend/internal/shared/middleware"
	"collection-backend/internal/shared/response"
	"collection-backend/pkg/container"
)

// SetupRouter builds the HTTP surface. Reads are public; every
// mutating route sits behind the JWT middleware.
func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     c.Config.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthCheckHandler(c))

	v1 := router.Group("/api/v1")
	auth := middleware.AuthMiddleware(c.JWTManager)

	setupAuthRoutes(v1, c, auth)
	setupCategoryRoutes(v1, c, auth)
	setupItemRoutes(v1, c, auth)
	setupHeroRoutes(v1, c, auth)
	setupImageRoutes(v1, c, auth)
	setupReportRoutes(v1, c)

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", c.UserHandler.Register)
		authGroup.POST("/login", c.UserHandler.Login)
		authGroup.POST("/refresh", c.UserHandler.Refresh)
		authGroup.GET("/me", auth, c.UserHandler.Me)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.POST("", auth, c.CategoryHandler.Create)
		categories.PUT("/:id", auth, c.CategoryHandler.Update)
		categories.DELETE("/:id", auth, c.CategoryHandler.Delete)
	}
}

func setupItemRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	items := v1.Group("/items")
	{
		items.GET("", c.ItemHandler.List)
		items.GET("/:id", c.ItemHandler.GetByID)
		items.POST("", auth, c.ItemHandler.Create)
		items.PUT("/:id", auth, c.ItemHandler.Update)
		items.DELETE("/:id", auth, c.ItemHandler.Delete)
	}

	v1.GET("/manufacturers", c.ManufacturerHandler.List)
}

func setupHeroRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	hero := v1.Group("/hero")
	{
		hero.GET("", c.HeroHandler.Get)
		hero.PUT("", auth, c.HeroHandler.Update)
	}
}

func setupImageRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	images := v1.Group("/images", auth)
	{
		images.POST("", c.ImageHandler.Upload)
		images.DELETE("", c.ImageHandler.Delete)
	}
}

func setupReportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reports := v1.Group("/reports")
	{
		reports.GET("/category-sums", c.ReportHandler.CategorySums)
		reports.GET("/top", c.ReportHandler.TopItems)
		reports.GET("/wishlist", c.ReportHandler.Wishlist)
		reports.GET("/valuation", c.ReportHandler.Valuation)
		reports.GET("/valuation/export", c.ReportHandler.ExportValuation)
		reports.GET("/categories/:id/rollup", c.ReportHandler.CategoryRollup)
		reports.GET("/home", c.ReportHandler.Home)
		reports.GET("/stats", c.ReportHandler.Stats)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":   "ok",
			"database": "ok",
			"cache":    "ok",
		}
		status := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Degraded but serviceable: reads come from the snapshot.
			health["cache"] = err.Error()
		}

		response.Success(ctx, status, health)
	}
}
