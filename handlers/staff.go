package handlers

import (
	"net/http"

	"salonflow/models"
	"salonflow/services/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler exposes staff account management.
type StaffHandler struct {
	Svc staff.StaffService
}

func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Svc: svc}
}

// ProvisionHandler creates a staff account with its default weekly schedule.
func (h *StaffHandler) ProvisionHandler(c *gin.Context) {
	logger := getLogger(c)
	var s models.Staff
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.Provision(c.Request.Context(), s)
	if err != nil {
		logger.Warn("staff provisioning rejected", zap.String("email", s.Email), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LoginHandler authenticates a staff member.
func (h *StaffHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetHandler returns one staff member.
func (h *StaffHandler) GetHandler(c *gin.Context) {
	s, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ListHandler returns all staff members.
func (h *StaffHandler) ListHandler(c *gin.Context) {
	staffList, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staffList})
}

// UpdateProfileHandler updates a staff member's profile fields.
func (h *StaffHandler) UpdateProfileHandler(c *gin.Context) {
	var s models.Staff
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	s.ID = c.Param("id")

	updated, err := h.Svc.UpdateProfile(c.Request.Context(), s)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeactivateHandler takes a staff member off the roster.
func (h *StaffHandler) DeactivateHandler(c *gin.Context) {
	if err := h.Svc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
