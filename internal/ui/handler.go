package ui

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jwib1009/family-activity-demo/internal/dto"
)

// Handler serves the server-rendered search pages. Each request builds its
// own model; nothing is kept between requests.
type Handler struct {
	api Searcher
	log *zap.Logger
}

// NewHandler wires the ui handler against the API client.
func NewHandler(api Searcher, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{api: api, log: log}
}

// Index renders the idle page: form only, no results column.
func (h *Handler) Index(c echo.Context) error {
	var m Model
	html, err := RenderPage(&m, dto.SearchCriteria{})
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, html)
}

// Search submits the form through the API and renders the resolved page.
func (h *Handler) Search(c echo.Context) error {
	maxDistance, _ := strconv.Atoi(c.FormValue("maxDistance"))
	criteria := dto.SearchCriteria{
		City:                c.FormValue("city"),
		KidAges:             c.FormValue("kidAges"),
		Availability:        c.FormValue("availability"),
		MaxDistance:         maxDistance,
		OptionalPreferences: c.FormValue("optionalPreferences"),
	}

	var m Model
	token := m.Submit()
	activities, err := h.api.SearchActivities(c.Request().Context(), criteria)
	if err != nil {
		h.log.Warn("search failed", zap.Error(err))
	}
	m.Resolve(token, activities, err)

	html, err := RenderPage(&m, criteria)
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, html)
}
