package api

import (
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"playland-backend/internal/camera"
	"playland-backend/internal/notification"
	"playland-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   *store.AppStore
	feed    *camera.Feed
	notify  *notification.WorkerPool
	db      *gorm.DB
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s *store.AppStore, feed *camera.Feed, notify *notification.WorkerPool, db *gorm.DB, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:   s,
		feed:    feed,
		notify:  notify,
		db:      db,
		webpush: webpushOptions,
	}
}

// GetState handles GET /api/state and returns the full application state.
func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.State())
}
