package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playland-backend/internal/notification"
	"playland-backend/internal/store"
)

type postWaitingListRequest struct {
	ChildID   string `json:"childId" binding:"required"`
	ChildName string `json:"childName" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// PostWaitingList handles POST /api/waiting-list. The assigned position is
// the count of entries already queued for that date plus one.
func (h *Handler) PostWaitingList(c *gin.Context) {
	var req postWaitingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.store.AddToWaitingList(store.WaitingListParams{
		ChildID:   req.ChildID,
		ChildName: req.ChildName,
		Date:      req.Date,
	})
	if err != nil {
		c.Error(err)
	}
	c.JSON(http.StatusCreated, entry)
}

// DeleteWaitingList handles DELETE /api/waiting-list/:id. Remaining entries
// keep their original positions. Removal means the child was admitted, so
// push subscribers get notified.
func (h *Handler) DeleteWaitingList(c *gin.Context) {
	removed, found, err := h.store.RemoveFromWaitingList(c.Param("id"))
	if err != nil {
		c.Error(err)
	}

	if found && h.notify != nil {
		h.notify.Dispatch(notification.Admission{
			ChildName: removed.ChildName,
			Date:      removed.Date,
		})
	}
	c.Status(http.StatusNoContent)
}
