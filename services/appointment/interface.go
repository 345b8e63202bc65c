package appointment

import (
	"context"

	appointmentRepo "salonflow/database/repository/appointment"
	clientRepo "salonflow/database/repository/client"
	serviceRepo "salonflow/database/repository/service"
	staffRepo "salonflow/database/repository/staff"
	"salonflow/models"
	"salonflow/services/notification"
	"salonflow/services/scheduling"
)

// AppointmentService drives the booking lifecycle. Every write that can
// collide with another booking for the same staff member runs under the
// staff booking lock and through the full conflict validation.
//
// callerClientID scopes client access: when non-empty the operation is
// refused unless the appointment belongs to that client. Staff and admin
// callers pass the empty string and may act on any appointment.
type AppointmentService interface {
	Book(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	Get(ctx context.Context, id, callerClientID string) (*models.Appointment, error)
	Update(ctx context.Context, id, callerClientID string, req models.UpdateAppointmentRequest) (*models.Appointment, error)
	Confirm(ctx context.Context, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, id, callerClientID, cancelledBy, reason string) (*models.Appointment, error)
	Complete(ctx context.Context, id string) (*models.Appointment, error)
	MarkNoShow(ctx context.Context, id string) (*models.Appointment, error)
	ListForStaffDay(ctx context.Context, staffID, date string) ([]models.Appointment, error)
	ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error)
}

// StaffLocker serializes booking writes per staff member.
type StaffLocker interface {
	AcquireStaffLock(ctx context.Context, staffID string) (token string, ok bool, err error)
	ReleaseStaffLock(ctx context.Context, staffID, token string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Services serviceRepo.ServiceRepository
	Staff    staffRepo.StaffRepository
	Clients  clientRepo.ClientRepository
	Engine   *scheduling.Engine
	Locker   StaffLocker
	Notifier notification.NotificationService
}
