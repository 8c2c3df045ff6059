package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the health endpoint.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// RegisterHomeRoutes registers the health endpoint.
func (h *HomeHandler) RegisterHomeRoutes(r *gin.Engine) {
	r.GET("/health", h.health)
}

// health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HomeHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
