package handlers

import (
	"net/http"

	"salonflow/models"
	"salonflow/services/catalogue"
	"salonflow/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler answers slot queries.
type AvailabilityHandler struct {
	Engine    *scheduling.Engine
	Catalogue catalogue.CatalogueService
}

func NewAvailabilityHandler(engine *scheduling.Engine, cat catalogue.CatalogueService) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Catalogue: cat}
}

// GetSlotsHandler returns the bookable start times for one staff member,
// service and day.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	var q models.SlotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	svc, err := h.Catalogue.Get(c.Request.Context(), q.ServiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !svc.Active {
		respondError(c, scheduling.NewValidation("service %s is not bookable", svc.Name))
		return
	}

	slots, err := h.Engine.ComputeSlots(c.Request.Context(), q.StaffID, q.Date, svc.Duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"staffId":   q.StaffID,
		"serviceId": q.ServiceID,
		"date":      q.Date,
		"slots":     slots,
	})
}
