package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jwib1009/family-activity-demo/internal/dto"
)

const apiVersion = "1.0.0"

// Health handles GET /: the liveness probe.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Message: "Family Activity Finder API",
		Version: apiVersion,
	})
}
