package handlers

import (
	"net/http"

	"salonflow/models"
	"salonflow/services/client"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes customer account management.
type ClientHandler struct {
	Svc client.ClientService
}

func NewClientHandler(svc client.ClientService) *ClientHandler {
	return &ClientHandler{Svc: svc}
}

// RegisterHandler creates a customer account.
func (h *ClientHandler) RegisterHandler(c *gin.Context) {
	var body models.Client
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.Register(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LoginHandler authenticates a client.
func (h *ClientHandler) LoginHandler(c *gin.Context) {
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

// MeHandler returns the authenticated client's account.
func (h *ClientHandler) MeHandler(c *gin.Context) {
	cl, err := h.Svc.Get(c.Request.Context(), c.GetString("clientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// UpdateProfileHandler updates the authenticated client's profile.
func (h *ClientHandler) UpdateProfileHandler(c *gin.Context) {
	var body models.Client
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	body.ID = c.GetString("clientID")

	updated, err := h.Svc.UpdateProfile(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
