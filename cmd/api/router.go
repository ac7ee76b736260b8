package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	// Mutation targets are identified by request-body IDs, so every
	// collection is a single path with one handler per verb.
	setupCategoryRoutes(router, c)
	setupProductRoutes(router, c)
	setupUserRoutes(router, c)

	return router
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(router *gin.Engine, c *container.Container) {
	categories := router.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.POST("", c.CategoryHandler.Create)
		categories.PATCH("", c.CategoryHandler.Update)
		categories.DELETE("", c.CategoryHandler.Delete)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(router *gin.Engine, c *container.Container) {
	products := router.Group("/products")
	{
		products.GET("", c.ProductHandler.GetAll)
		products.POST("", c.ProductHandler.Create)
		products.PATCH("", c.ProductHandler.Update)
		products.DELETE("", c.ProductHandler.Delete)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(router *gin.Engine, c *container.Container) {
	users := router.Group("/users")
	{
		users.GET("", c.UserHandler.GetAll)
		users.POST("", c.UserHandler.Create)
		users.PATCH("", c.UserHandler.Update)
		users.DELETE("", c.UserHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
