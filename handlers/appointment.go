package handlers

import (
	"net/http"

	"salonflow/models"
	"salonflow/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking lifecycle over HTTP.
type AppointmentHandler struct {
	Svc appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// BookHandler creates an appointment for the authenticated client.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if clientID := c.GetString("clientID"); clientID != "" {
		req.ClientID = clientID
	}

	appt, err := h.Svc.Book(c.Request.Context(), req)
	if err != nil {
		logger.Warn("booking rejected", zap.String("staffId", req.StaffID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetHandler returns one appointment. Clients only see their own.
func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	appt, err := h.Svc.Get(c.Request.Context(), c.Param("id"), c.GetString("clientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateHandler applies a partial update, revalidating when the schedule-
// relevant fields change.
func (h *AppointmentHandler) UpdateHandler(c *gin.Context) {
	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appt, err := h.Svc.Update(c.Request.Context(), c.Param("id"), c.GetString("clientID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ConfirmHandler moves a pending appointment to confirmed.
func (h *AppointmentHandler) ConfirmHandler(c *gin.Context) {
	appt, err := h.Svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelHandler cancels an appointment and frees its window.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	cancelledBy := c.GetString("clientID")
	if cancelledBy == "" {
		cancelledBy = c.GetString("staffID")
	}
	if cancelledBy == "" {
		cancelledBy = c.GetString("adminID")
	}

	appt, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), c.GetString("clientID"), cancelledBy, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteHandler marks a confirmed appointment as done.
func (h *AppointmentHandler) CompleteHandler(c *gin.Context) {
	appt, err := h.Svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// NoShowHandler records a missed appointment.
func (h *AppointmentHandler) NoShowHandler(c *gin.Context) {
	appt, err := h.Svc.MarkNoShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListForClientHandler returns the authenticated client's appointments.
func (h *AppointmentHandler) ListForClientHandler(c *gin.Context) {
	appts, err := h.Svc.ListForClient(c.Request.Context(), c.GetString("clientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListForStaffDayHandler returns a staff member's live bookings for one day.
func (h *AppointmentHandler) ListForStaffDayHandler(c *gin.Context) {
	appts, err := h.Svc.ListForStaffDay(c.Request.Context(), c.Param("staffId"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
