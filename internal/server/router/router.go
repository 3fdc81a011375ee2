package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ermalb/suxhuk-orders/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(storefront *handlers.StorefrontHandler, backoffice *handlers.BackofficeHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	portal := r.Group("/portal")
	{
		portal.POST("/sessions", storefront.StartSession)
		portal.PUT("/sessions/:id/profile", storefront.SaveProfile)
		portal.PUT("/sessions/:id/product", storefront.SelectProduct)
		portal.PUT("/sessions/:id/quantity", storefront.SetQuantity)
		portal.GET("/sessions/:id/quote", storefront.Quote)
		portal.POST("/sessions/:id/orders", storefront.PlaceOrder)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/inventory", backoffice.ListInventory)
		admin.POST("/inventory/:id/adjust", backoffice.AdjustInventory)
		admin.GET("/customers", backoffice.ListCustomers)
		admin.POST("/customers", backoffice.UpsertCustomer)
		admin.GET("/orders", backoffice.ListOrders)
		admin.PATCH("/orders/:id/status", backoffice.SetStatus)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
