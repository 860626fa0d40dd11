package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/server/http/handlers"
	"github.com/saxtrade/marketplace/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	inventoryHandler := handlers.NewInventoryHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	financeHandler := handlers.NewFinanceHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	auth := api.Group("")
	auth.Use(middleware.AuthRequired(facade))

	auth.GET("/products", catalogHandler.List)
	auth.GET("/products/:id", catalogHandler.Get)

	auth.GET("/cart", cartHandler.List)
	auth.POST("/cart", cartHandler.Add)
	auth.DELETE("/cart", cartHandler.Clear)
	auth.DELETE("/cart/:id", cartHandler.Remove)

	auth.POST("/orders", orderHandler.Place)
	auth.GET("/orders", orderHandler.List)
	auth.GET("/orders/:id", orderHandler.Get)

	seller := auth.Group("")
	seller.Use(middleware.RequireRole(string(model.RoleSeller)))

	seller.POST("/products", catalogHandler.Create)
	seller.PATCH("/products/:id", catalogHandler.Update)
	seller.DELETE("/products/:id", catalogHandler.Delete)

	seller.GET("/inventory", inventoryHandler.Snapshot)
	seller.POST("/inventory/adjust", inventoryHandler.Adjust)
	seller.POST("/inventory/set", inventoryHandler.Set)

	seller.PATCH("/orders/:id/status", orderHandler.Transition)

	seller.GET("/finance/summary", financeHandler.Summary)
	seller.GET("/finance/sales", financeHandler.Sales)

	return engine
}
