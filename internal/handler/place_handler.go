package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/raahsarthi/service-route/internal/application"
	"github.com/raahsarthi/service-route/internal/response"
)

// PlaceHandler handles HTTP requests for POI aggregation.
type PlaceHandler struct {
	service *application.PlaceService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(service *application.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// RegisterRoutes registers the place routes on the given router group.
func (h *PlaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/places", h.SearchPlaces)
}

// SearchPlaces handles POST /api/places.
func (h *PlaceHandler) SearchPlaces(c *gin.Context) {
	var req application.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "route points are required")
		return
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
