// Package handler exposes the route and place services over HTTP.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/raahsarthi/service-route/internal/application"
	"github.com/raahsarthi/service-route/internal/response"
	"github.com/raahsarthi/service-route/internal/upstream/geocode"
)

// TripHandler handles HTTP requests for route planning.
type TripHandler struct {
	service *application.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service *application.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// RegisterRoutes registers the trip routes on the given router group.
func (h *TripHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api")
	{
		api.POST("/route", h.PlanRoute)
		api.GET("/geocode", h.Suggest)
	}
}

// PlanRoute handles POST /api/route.
func (h *TripHandler) PlanRoute(c *gin.Context) {
	var req application.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "origin and destination are required")
		return
	}

	result, err := h.service.Plan(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Suggest handles GET /api/geocode?q=. Lookup failures degrade to an empty
// candidate list so the client's autocomplete never breaks.
func (h *TripHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Success(c, []geocode.Match{})
		return
	}

	matches := h.service.Suggest(c.Request.Context(), query)
	if matches == nil {
		matches = []geocode.Match{}
	}
	response.Success(c, matches)
}
