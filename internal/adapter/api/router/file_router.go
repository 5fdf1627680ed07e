package router

import (
	"github.com/labstack/echo/v4"

	"estatesalehub/internal/adapter/api/handler"
	"estatesalehub/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.POST("/listing-image", fileHandler.UploadListingImage)
}
