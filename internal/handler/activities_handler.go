package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jwib1009/family-activity-demo/internal/dto"
	"github.com/jwib1009/family-activity-demo/internal/service"
)

// Recommender is the slice of the recommendation service the handler needs.
type Recommender interface {
	Search(ctx context.Context, criteria dto.SearchCriteria) (service.Activities, error)
}

// ActivitiesHandler serves the activity search endpoint.
type ActivitiesHandler struct {
	service Recommender
	devMode bool
	log     *zap.Logger
}

// NewActivitiesHandler wires the handler. devMode enables error details in
// 500 bodies.
func NewActivitiesHandler(svc Recommender, devMode bool, log *zap.Logger) *ActivitiesHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActivitiesHandler{service: svc, devMode: devMode, log: log}
}

// Search handles POST /api/search-activities: validate, delegate, respond.
// A request missing any required field is rejected before any upstream call.
func (h *ActivitiesHandler) Search(c echo.Context) error {
	var req dto.SearchCriteria
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewValidationError(req))
	}
	if !req.Valid() {
		return c.JSON(http.StatusBadRequest, dto.NewValidationError(req))
	}

	h.log.Info("received search request",
		zap.String("city", req.City),
		zap.String("kid_ages", req.KidAges),
		zap.String("availability", req.Availability),
		zap.Int("max_distance", req.MaxDistance))

	activities, err := h.service.Search(c.Request().Context(), req)
	if err != nil {
		h.log.Error("activity search failed", zap.Error(err))
		resp := dto.ServerErrorResponse{
			Error:   "Failed to get activity recommendations",
			Message: err.Error(),
		}
		if h.devMode {
			resp.Details = fmt.Sprintf("%+v", err)
		}
		return c.JSON(http.StatusInternalServerError, resp)
	}

	return c.JSON(http.StatusOK, activities)
}
