package handlers

import (
	"net/http"

	"booktrack/middleware"
	"booktrack/models"
	"booktrack/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission and per-service listing.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in models.ReviewCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	rev, err := h.Service.SubmitReview(c.Request.Context(), ident, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// ListByService handles GET /api/reviews/service/:serviceId.
func (h *ReviewHandler) ListByService(c *gin.Context) {
	reviews, err := h.Service.ListByService(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
