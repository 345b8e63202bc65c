// File: salonflow/handlers/bundle.go
package handlers

import (
	clientRepoPkg "salonflow/database/repository/client"
	staffRepoPkg "salonflow/database/repository/staff"
	"salonflow/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct. Routes read
// the repositories and the auth cache for the auth middlewares and the
// handler funcs for the endpoints.
type HandlerBundle struct {
	StaffRepo  staffRepoPkg.StaffRepository
	ClientRepo clientRepoPkg.ClientRepository
	AuthCache  middleware.TokenCache

	// Appointment endpoints.
	BookAppointmentHandler     gin.HandlerFunc
	GetAppointmentHandler      gin.HandlerFunc
	UpdateAppointmentHandler   gin.HandlerFunc
	ConfirmAppointmentHandler  gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc
	NoShowAppointmentHandler   gin.HandlerFunc
	ListClientAppointments     gin.HandlerFunc
	ListStaffDayAppointments   gin.HandlerFunc

	// Availability endpoint.
	GetSlotsHandler gin.HandlerFunc

	// Schedule endpoints.
	GetWeekScheduleHandler gin.HandlerFunc
	UpsertWorkingDay       gin.HandlerFunc

	// Vacation endpoints.
	RequestVacationHandler  gin.HandlerFunc
	ApproveVacationHandler  gin.HandlerFunc
	RejectVacationHandler   gin.HandlerFunc
	WithdrawVacationHandler gin.HandlerFunc
	ListVacationsHandler    gin.HandlerFunc

	// Staff endpoints.
	ProvisionStaffHandler  gin.HandlerFunc
	StaffLoginHandler      gin.HandlerFunc
	GetStaffHandler        gin.HandlerFunc
	ListStaffHandler       gin.HandlerFunc
	UpdateStaffHandler     gin.HandlerFunc
	DeactivateStaffHandler gin.HandlerFunc

	// Client endpoints.
	RegisterClientHandler      gin.HandlerFunc
	ClientLoginHandler         gin.HandlerFunc
	ClientMeHandler            gin.HandlerFunc
	UpdateClientProfileHandler gin.HandlerFunc

	// Catalogue endpoints.
	CreateServiceHandler      gin.HandlerFunc
	GetServiceHandler         gin.HandlerFunc
	UpdateServiceHandler      gin.HandlerFunc
	RetireServiceHandler      gin.HandlerFunc
	ListActiveServicesHandler gin.HandlerFunc
}
