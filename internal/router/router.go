// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barrelhouse/liquorstore-backend/internal/cart"
	"github.com/barrelhouse/liquorstore-backend/internal/config"
	"github.com/barrelhouse/liquorstore-backend/internal/events"
	"github.com/barrelhouse/liquorstore-backend/internal/handlers"
	"github.com/barrelhouse/liquorstore-backend/internal/middleware"
	"github.com/barrelhouse/liquorstore-backend/internal/services"
	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

const cartSessionTTL = 24 * time.Hour

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Session cart store: Redis when configured, in-process otherwise.
	var cartStore cart.Store
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cartStore = cart.NewRedisStore(rdb, cartSessionTTL)
	} else {
		cartStore = cart.NewMemoryStore(cartSessionTTL)
	}

	var producer *events.Producer
	if cfg.Kafka.Enabled {
		producer = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic)
	}

	// Initialize services
	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(cartStore, catalogService)
	orderService := services.NewOrderService(db, producer)
	paymentService := services.NewPaymentService(cfg, orderService)
	reportService := services.NewReportService(db)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService, paymentService)
	adminHandler := handlers.NewAdminHandler(catalogService, orderService, reportService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Storefront routes
	products := r.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/search", catalogHandler.SearchProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.POST("", middleware.AuthRequired(), middleware.AdminRequired(), catalogHandler.CreateProduct)
	}

	cartRoutes := r.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PATCH("/items/:productId", cartHandler.UpdateItem)
		cartRoutes.DELETE("/items/:productId", cartHandler.RemoveItem)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}

	orders := r.Group("/orders")
	orders.Use(middleware.OptionalAuth())
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", orderHandler.CreateOrder)
	}

	checkout := r.Group("/checkout")
	checkout.Use(middleware.OptionalAuth())
	{
		checkout.POST("/payment-intent", orderHandler.CreatePaymentIntent)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		inventory := admin.Group("/inventory")
		{
			inventory.GET("", adminHandler.GetInventory)
			inventory.POST("", adminHandler.CreateProduct)
			inventory.PATCH("/:id", adminHandler.UpdateProduct)
			inventory.PUT("/:id/stock", adminHandler.SetStock)
			inventory.DELETE("/:id", adminHandler.DeleteProduct)
		}

		adminOrders := admin.Group("/orders")
		{
			adminOrders.GET("", adminHandler.GetOrders)
			adminOrders.PATCH("/:id", adminHandler.UpdateOrderStatus)
		}

		admin.GET("/dashboard", adminHandler.GetDashboard)
		admin.GET("/order-stats", adminHandler.GetOrderStats)
	}

	return r
}
