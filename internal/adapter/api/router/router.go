package router

import (
	"github.com/labstack/echo/v4"

	"estatesalehub/internal/adapter/api/middleware"
)

// Setup registers all application routes
func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupHealthRouter(e)
	SetupListingRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
}
