package handlers

import (
	"net/http"

	"booktrack/middleware"
	"booktrack/services/booking"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the mock payment endpoints.
type PaymentHandler struct {
	Service booking.BookingService
}

func NewPaymentHandler(svc booking.BookingService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateCheckout handles POST /api/payments/create-checkout-session. The
// booking is identified by the booking_id query parameter. Calling it again
// for a booking that is already paid is a no-op.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	bookingID := c.Query("booking_id")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
		return
	}

	result, err := h.Service.InitiateMockPayment(c.Request.Context(), ident, bookingID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmMock handles POST /api/payments/mock-payment/:bookingId. Only
// bookings whose service has been completed can be confirmed.
func (h *PaymentHandler) ConfirmMock(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	result, err := h.Service.ConfirmMockPayment(c.Request.Context(), ident, c.Param("bookingId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
