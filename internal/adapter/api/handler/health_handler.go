package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct{}

var healthHandler *HealthHandler

// SetupHealthHandler initializes the health handler
func SetupHealthHandler() {
	healthHandler = &HealthHandler{}
}

// GetHealthHandler returns the health handler instance
func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
