package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playland-backend/internal/catalog"
)

// GetCatalog handles GET /api/catalog and returns the fixed booking choices.
func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timeSlots":        catalog.TimeSlots,
		"durations":        catalog.Durations,
		"extensionMinutes": catalog.ExtensionMinutes,
		"extensionPrice":   catalog.ExtensionPrice,
		"avatars":          catalog.Avatars,
	})
}
