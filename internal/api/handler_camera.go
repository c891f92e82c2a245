package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// cameraResponse reports the simulated feed state.
type cameraResponse struct {
	Live  bool `json:"live"`
	Frame int  `json:"frame"`
}

// GetCamera handles GET /api/camera.
func (h *Handler) GetCamera(c *gin.Context) {
	live, frame := h.feed.Status()
	c.JSON(http.StatusOK, cameraResponse{Live: live, Frame: frame})
}

type setLiveRequest struct {
	Live *bool `json:"live" binding:"required"`
}

// PostCameraLive handles POST /api/camera/live and toggles the feed.
func (h *Handler) PostCameraLive(c *gin.Context) {
	var req setLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.feed.SetLive(*req.Live)
	live, frame := h.feed.Status()
	c.JSON(http.StatusOK, cameraResponse{Live: live, Frame: frame})
}
