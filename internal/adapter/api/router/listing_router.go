package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"estatesalehub/internal/adapter/api/handler"
	"estatesalehub/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Public feed. Rate limited because a cold read can fan out to the
	// scrape manager.
	feedLimiter := middleware.NewRateLimiter(60, time.Minute)

	sales := e.Group("/v1/sales")
	sales.Use(feedLimiter.Middleware())
	sales.GET("", listingHandler.ListSales)
	sales.GET("/:id", listingHandler.GetSale)

	mySales := e.Group("/v1/my-sales")
	mySales.Use(authMiddleware.Authenticate)
	mySales.GET("", listingHandler.ListMySales)
	mySales.POST("", listingHandler.CreateMySale)
	mySales.PUT("/:id", listingHandler.UpdateMySale)
	mySales.DELETE("/:id", listingHandler.DeleteMySale)
}
