package handlers

import (
	"net/http"

	"salonflow/models"
	"salonflow/services/vacation"

	"github.com/gin-gonic/gin"
)

// VacationHandler exposes the vacation request and approval flow.
type VacationHandler struct {
	Svc vacation.VacationService
}

func NewVacationHandler(svc vacation.VacationService) *VacationHandler {
	return &VacationHandler{Svc: svc}
}

// RequestHandler files a vacation. Staff requests start pending; an
// administrator's request is approved on the spot.
func (h *VacationHandler) RequestHandler(c *gin.Context) {
	var req models.VacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if staffID := c.GetString("staffID"); staffID != "" {
		req.StaffID = staffID
	}

	v, err := h.Svc.Request(c.Request.Context(), req, c.GetBool("isAdmin"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// ApproveHandler approves a pending vacation and reports colliding
// appointments as advisory data.
func (h *VacationHandler) ApproveHandler(c *gin.Context) {
	decision, err := h.Svc.Approve(c.Request.Context(), c.Param("id"), c.GetString("adminID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

// RejectHandler rejects a pending vacation.
func (h *VacationHandler) RejectHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	v, err := h.Svc.Reject(c.Request.Context(), c.Param("id"), c.GetString("adminID"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// WithdrawHandler removes a vacation for its owner, or any vacation when
// the caller is an admin.
func (h *VacationHandler) WithdrawHandler(c *gin.Context) {
	if err := h.Svc.Withdraw(c.Request.Context(), c.Param("id"), c.GetString("staffID"), c.GetBool("isAdmin")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "withdrawn"})
}

// ListHandler returns a staff member's vacations.
func (h *VacationHandler) ListHandler(c *gin.Context) {
	staffID := c.Param("staffId")
	if staffID == "" {
		staffID = c.GetString("staffID")
	}
	vacations, err := h.Svc.ListByStaff(c.Request.Context(), staffID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacations": vacations})
}
