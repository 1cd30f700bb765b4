package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the liveness endpoint.
type HealthHandler struct {
	service string
}

// NewHealthHandler creates a health handler reporting the given service name.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// RegisterRoutes registers the health route on the given router.
func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/health", h.Health)
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   h.service,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
