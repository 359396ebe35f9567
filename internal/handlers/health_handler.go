package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const serviceName = "FinWise AI"

// HealthCheckHandler serves the liveness endpoints
type HealthCheckHandler struct{}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{}
}

// Root reports that the service is up
//
// Method: GET /
func (h *HealthCheckHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": serviceName + " Service is running",
	})
}

// HealthCheck reports service health. It never calls the LLM provider.
//
// Method: GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}
