package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playland-backend/internal/store"
)

// occupancyResponse reports the current gauge reading.
type occupancyResponse struct {
	Current int                  `json:"current"`
	Max     int                  `json:"max"`
	Level   store.OccupancyLevel `json:"level"`
}

// GetOccupancy handles GET /api/occupancy.
func (h *Handler) GetOccupancy(c *gin.Context) {
	current, max := h.store.CurrentOccupancy()
	c.JSON(http.StatusOK, occupancyResponse{
		Current: current,
		Max:     max,
		Level:   h.store.OccupancyLevel(),
	})
}
