package handlers

import (
	"net/http"
	"strconv"

	"booktrack/middleware"
	"booktrack/models"
	"booktrack/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the service catalog: public browsing plus provider CRUD.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// Create handles POST /api/services.
func (h *CatalogHandler) Create(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in models.ServiceCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, err := h.Service.CreateService(c.Request.Context(), ident, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// List handles GET /api/services with optional category, location and price
// range query parameters.
func (h *CatalogHandler) List(c *gin.Context) {
	filter := models.ServiceFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		filter.MaxPrice = &v
	}

	services, err := h.Service.ListServices(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Get handles GET /api/services/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	svc, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Mine handles GET /api/services/my-services for providers.
func (h *CatalogHandler) Mine(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	services, err := h.Service.MyServices(c.Request.Context(), ident)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Update handles PUT /api/services/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in models.ServiceUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(c.Request.Context(), ident, c.Param("id"), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /api/services/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.Service.DeleteService(c.Request.Context(), ident, c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
