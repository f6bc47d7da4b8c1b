package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jwib1009/family-activity-demo/internal/handler"
	"github.com/jwib1009/family-activity-demo/internal/ui"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Activities *handler.ActivitiesHandler
	UI         *ui.Handler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, handlers Handlers) {
	e.GET("/", handler.Health)

	api := e.Group("/api")
	api.POST("/search-activities", handlers.Activities.Search)

	if handlers.UI != nil {
		e.GET("/ui", handlers.UI.Index)
		e.POST("/ui/search", handlers.UI.Search)
	}
}
