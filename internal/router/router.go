// Package router wires services, handlers and middleware into the HTTP route table.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pricetrack/internal/docs" // swagger docs
	"pricetrack/internal/handlers"
	"pricetrack/internal/middleware"
	"pricetrack/internal/services"
	"pricetrack/internal/validator"
)

// Options tune the HTTP layer.
type Options struct {
	RequestTimeout    time.Duration
	CORSAllowedOrigin string
}

// New builds the Gin engine serving the pricetrack API over db.
func New(db *gorm.DB, opts Options) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.CORSAllowedOrigin == "" {
		opts.CORSAllowedOrigin = "*"
	}

	validator.Register()

	// Initialize services
	purchaseService := services.NewPurchaseService(db)
	historyService := services.NewPriceHistoryService(db)
	feedService := services.NewPriceFeedService(db)
	catalogService := services.NewCatalogService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, historyService, auditService)
	productHandler := handlers.NewProductHandler(catalogService, historyService)
	priceHandler := handlers.NewPriceHandler(feedService)
	supermarketHandler := handlers.NewSupermarketHandler(catalogService, historyService)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSAllowedOrigin))
	router.Use(middleware.RequestTimeout(opts.RequestTimeout))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", handlers.Health)

	v1 := router.Group("/api/v1")

	purchases := v1.Group("/purchases")
	purchases.POST("", purchaseHandler.RecordPurchase)
	purchases.GET("/user/:userId", purchaseHandler.GetUserPurchases)
	purchases.GET("/:purchaseId/items", purchaseHandler.GetPurchaseItems)

	products := v1.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/code/:code", productHandler.GetProductByBarcode)
	products.GET("/:productId/price-history", productHandler.GetPriceHistory)

	prices := v1.Group("/prices")
	prices.GET("", priceHandler.GetFeed)
	prices.GET("/summary", priceHandler.GetFeedSummary)

	supermarkets := v1.Group("/supermarkets")
	supermarkets.GET("", supermarketHandler.ListSupermarkets)
	supermarkets.GET("/:supermarketId/branches", supermarketHandler.ListBranches)
	supermarkets.GET("/:supermarketId/product-prices", supermarketHandler.GetProductPrices)

	return router
}
