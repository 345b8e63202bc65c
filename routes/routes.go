package routes

import (
	"net/http"
	"time"

	"salonflow/handlers"
	"salonflow/middleware"
	"salonflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers customer account endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", hb.RegisterClientHandler)
		api.POST("/login", hb.ClientLoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.ClientAuthMiddleware(hb.ClientRepo, hb.AuthCache))
		api.GET("/me", hb.ClientMeHandler)
		api.PATCH("/me", hb.UpdateClientProfileHandler)
		api.GET("/me/appointments", hb.ListClientAppointments)
	}
}

// RegisterStaffRoutes registers staff account and schedule endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/login", hb.StaffLoginHandler)

		// Anyone may browse the roster and published schedules.
		api.GET("", hb.ListStaffHandler)
		api.GET("/:staffId", hb.GetStaffHandler)
		api.GET("/:staffId/schedule", hb.GetWeekScheduleHandler)

		// Schedule edits and day listings require a staff session.
		protected := api.Group("")
		protected.Use(middleware.StaffAuthMiddleware(hb.StaffRepo, hb.AuthCache))
		protected.PUT("/:staffId/schedule/:day", hb.UpsertWorkingDay)
		protected.GET("/:staffId/appointments", hb.ListStaffDayAppointments)
		protected.PATCH("/:staffId", hb.UpdateStaffHandler)
	}
}

// RegisterBookingRoutes sets up the appointment and availability endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Slot queries are public: clients browse before signing in.
	r.GET("/api/availability", hb.GetSlotsHandler)

	api := r.Group("/api/appointments")
	{
		api.Use(middleware.ClientAuthMiddleware(hb.ClientRepo, hb.AuthCache))
		api.POST("", hb.BookAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PATCH("/:id", hb.UpdateAppointmentHandler)
		api.POST("/:id/cancel", hb.CancelAppointmentHandler)
	}

	// Front-desk transitions require a staff session.
	desk := r.Group("/api/desk/appointments")
	{
		desk.Use(middleware.StaffAuthMiddleware(hb.StaffRepo, hb.AuthCache))
		desk.POST("/:id/confirm", hb.ConfirmAppointmentHandler)
		desk.POST("/:id/complete", hb.CompleteAppointmentHandler)
		desk.POST("/:id/no-show", hb.NoShowAppointmentHandler)
		desk.POST("/:id/cancel", hb.CancelAppointmentHandler)
	}
}

// RegisterVacationRoutes sets up vacation request and approval endpoints.
func RegisterVacationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vacations")
	{
		api.Use(middleware.StaffAuthMiddleware(hb.StaffRepo, hb.AuthCache))
		api.POST("", hb.RequestVacationHandler)
		api.GET("", hb.ListVacationsHandler)
		api.DELETE("/:id", hb.WithdrawVacationHandler)
	}
}

// RegisterCatalogueRoutes sets up the service catalogue endpoints.
func RegisterCatalogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.ListActiveServicesHandler)
	r.GET("/api/services/:id", hb.GetServiceHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())

		adminGroup.POST("/staff", hb.ProvisionStaffHandler)
		adminGroup.DELETE("/staff/:id", hb.DeactivateStaffHandler)

		adminGroup.POST("/vacations", hb.RequestVacationHandler)
		adminGroup.GET("/vacations/:staffId", hb.ListVacationsHandler)
		adminGroup.POST("/vacations/:id/approve", hb.ApproveVacationHandler)
		adminGroup.POST("/vacations/:id/reject", hb.RejectVacationHandler)
		adminGroup.DELETE("/vacations/:id", hb.WithdrawVacationHandler)

		adminGroup.POST("/services", hb.CreateServiceHandler)
		adminGroup.PUT("/services/:id", hb.UpdateServiceHandler)
		adminGroup.DELETE("/services/:id", hb.RetireServiceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint. The status code
// degrades to 503 when any dependency is down.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		status, label := http.StatusOK, "ok"
		if !health.Healthy() {
			status, label = http.StatusServiceUnavailable, "degraded"
		}
		c.JSON(status, gin.H{"status": label, "health": health})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClientRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVacationRoutes(r, hb)
	RegisterCatalogueRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
