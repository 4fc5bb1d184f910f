package handlers

import (
	"net/http"

	"booktrack/middleware"
	"booktrack/models"
	"booktrack/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in models.BookingCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), ident, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// MyBookings handles GET /api/bookings/my-bookings for customers.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	bookings, err := h.Service.ListForUser(c.Request.Context(), ident)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ProviderRequests handles GET /api/bookings/provider-requests.
func (h *BookingHandler) ProviderRequests(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	bookings, err := h.Service.ListForProvider(c.Request.Context(), ident)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	b, err := h.Service.GetBooking(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatus handles PUT /api/bookings/:id/status. The requested transition
// is validated against the lifecycle state machine and the caller's role.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in models.BookingStatusUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.UpdateStatus(c.Request.Context(), ident, c.Param("id"), in.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
