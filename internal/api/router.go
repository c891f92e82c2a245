package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"playland-backend/config"
	"playland-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// Only the fixed catalog is cacheable; state reads must observe the
	// latest mutation.
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 10*time.Minute)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/state", h.GetState)

		api.POST("/children", h.PostChild)
		api.PATCH("/children/:id", h.PatchChild)
		api.DELETE("/children/:id", h.DeleteChild)

		api.POST("/bookings", h.PostBooking)
		api.POST("/bookings/:id/extend", h.ExtendBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.GET("/bookings/today", h.GetTodayBookings)
		api.GET("/bookings/recent", h.GetRecentBookings)

		api.POST("/waiting-list", h.PostWaitingList)
		api.DELETE("/waiting-list/:id", h.DeleteWaitingList)

		api.GET("/occupancy", h.GetOccupancy)
		api.GET("/catalog", caching, h.GetCatalog)

		api.GET("/camera", h.GetCamera)
		api.POST("/camera/live", h.PostCameraLive)

		api.GET("/subscriptions", h.GetSubscription)
		api.PUT("/subscriptions", h.PutSubscription)
		api.DELETE("/subscriptions", h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
