package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"playland-backend/internal/store"
)

type postBookingRequest struct {
	ChildID       string  `json:"childId" binding:"required"`
	ChildName     string  `json:"childName" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	TimeSlot      string  `json:"timeSlot" binding:"required"`
	Duration      int     `json:"duration" binding:"required,gt=0"`
	Payment       float64 `json:"payment" binding:"gte=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=card cash"`
}

// PostBooking handles POST /api/bookings. The booking starts active and the
// occupancy counter goes up by one, clamped to capacity.
func (h *Handler) PostBooking(c *gin.Context) {
	var req postBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.store.AddBooking(store.BookingParams{
		ChildID:       req.ChildID,
		ChildName:     req.ChildName,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Duration:      req.Duration,
		Payment:       req.Payment,
		PaymentMethod: store.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		c.Error(err)
	}
	c.JSON(http.StatusCreated, booking)
}

type extendBookingRequest struct {
	AdditionalMinutes int     `json:"additionalMinutes" binding:"required,gt=0"`
	AdditionalPayment float64 `json:"additionalPayment" binding:"gte=0"`
}

// ExtendBooking handles POST /api/bookings/:id/extend.
func (h *Handler) ExtendBooking(c *gin.Context) {
	var req extendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.ExtendBooking(c.Param("id"), req.AdditionalMinutes, req.AdditionalPayment); err != nil {
		c.Error(err)
	}
	c.Status(http.StatusNoContent)
}

// CompleteBooking handles POST /api/bookings/:id/complete.
func (h *Handler) CompleteBooking(c *gin.Context) {
	if err := h.store.CompleteBooking(c.Param("id")); err != nil {
		c.Error(err)
	}
	c.Status(http.StatusNoContent)
}

// GetTodayBookings handles GET /api/bookings/today.
func (h *Handler) GetTodayBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.TodayBookings())
}

// GetRecentBookings handles GET /api/bookings/recent?limit=n (default 10).
func (h *Handler) GetRecentBookings(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	c.JSON(http.StatusOK, h.store.RecentBookings(limit))
}
