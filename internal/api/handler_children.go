package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playland-backend/internal/store"
)

type postChildRequest struct {
	Name      string   `json:"name" binding:"required"`
	Age       int      `json:"age" binding:"required,gt=0,lt=18"`
	Allergies []string `json:"allergies"`
	Notes     string   `json:"notes"`
	Avatar    string   `json:"avatar"`
}

// PostChild handles POST /api/children.
func (h *Handler) PostChild(c *gin.Context) {
	var req postChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := h.store.AddChild(store.ChildParams{
		Name:      req.Name,
		Age:       req.Age,
		Allergies: req.Allergies,
		Notes:     req.Notes,
		Avatar:    req.Avatar,
	})
	if err != nil {
		// The in-memory mutation stands even when the write failed.
		c.Error(err)
	}
	c.JSON(http.StatusCreated, child)
}

type patchChildRequest struct {
	Name      *string   `json:"name"`
	Age       *int      `json:"age" binding:"omitempty,gt=0,lt=18"`
	Allergies *[]string `json:"allergies"`
	Notes     *string   `json:"notes"`
	Avatar    *string   `json:"avatar"`
}

// PatchChild handles PATCH /api/children/:id. Only supplied fields change;
// unknown ids are a no-op.
func (h *Handler) PatchChild(c *gin.Context) {
	var req patchChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateChild(c.Param("id"), store.ChildUpdate{
		Name:      req.Name,
		Age:       req.Age,
		Allergies: req.Allergies,
		Notes:     req.Notes,
		Avatar:    req.Avatar,
	}); err != nil {
		c.Error(err)
	}
	c.Status(http.StatusNoContent)
}

// DeleteChild handles DELETE /api/children/:id. Bookings and waiting-list
// entries referencing the child are kept.
func (h *Handler) DeleteChild(c *gin.Context) {
	if err := h.store.DeleteChild(c.Param("id")); err != nil {
		c.Error(err)
	}
	c.Status(http.StatusNoContent)
}
