package handlers

import (
	"net/http"

	"salonflow/models"
	"salonflow/services/catalogue"

	"github.com/gin-gonic/gin"
)

// CatalogueHandler exposes service catalogue management.
type CatalogueHandler struct {
	Svc catalogue.CatalogueService
}

func NewCatalogueHandler(svc catalogue.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{Svc: svc}
}

// CreateHandler adds a service to the catalogue.
func (h *CatalogueHandler) CreateHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), svc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetHandler returns one service.
func (h *CatalogueHandler) GetHandler(c *gin.Context) {
	svc, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UpdateHandler replaces a service's mutable fields.
func (h *CatalogueHandler) UpdateHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")

	updated, err := h.Svc.Update(c.Request.Context(), svc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RetireHandler takes a service off the catalogue.
func (h *CatalogueHandler) RetireHandler(c *gin.Context) {
	if err := h.Svc.Retire(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "retired"})
}

// ListActiveHandler returns the bookable services.
func (h *CatalogueHandler) ListActiveHandler(c *gin.Context) {
	services, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
