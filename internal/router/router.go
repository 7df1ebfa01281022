// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rasmstore/backend/internal/catalog"
	"github.com/rasmstore/backend/internal/config"
	"github.com/rasmstore/backend/internal/handlers"
	"github.com/rasmstore/backend/internal/middleware"
	"github.com/rasmstore/backend/internal/services"
)

func Initialize(store *catalog.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(store)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, cfg)
	categoryHandler := handlers.NewCategoryHandler()

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.PrometheusMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  "1.0.0",
			"products": store.Len(),
		})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/stats", productHandler.GetStats)
			products.GET("/filter", productHandler.FilterProducts)
			products.GET("/search", middleware.SearchRateLimit(), productHandler.SearchProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/related", productHandler.GetRelatedProducts)
			products.GET("/:id/whatsapp-link", productHandler.GetWhatsAppLink)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:category/products", productHandler.GetProductsByCategory)
		}

		// Brand routes
		brands := v1.Group("/brands")
		{
			brands.GET("/:brand/products", productHandler.GetProductsByBrand)
		}
	}

	return r
}
