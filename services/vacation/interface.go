package vacation

import (
	"context"

	staffRepo "salonflow/database/repository/staff"
	vacationRepo "salonflow/database/repository/vacation"
	"salonflow/models"
	"salonflow/services/notification"
	"salonflow/services/scheduling"
)

// VacationService manages vacation requests and their approval flow.
// Approval is advisory: it never cancels bookings, it reports the ones that
// now collide so the front desk can reschedule them by hand.
type VacationService interface {
	Request(ctx context.Context, req models.VacationRequest, requestedByAdmin bool) (*models.Vacation, error)
	Get(ctx context.Context, id string) (*models.Vacation, error)
	Approve(ctx context.Context, id, approverID string) (*models.VacationDecision, error)
	Reject(ctx context.Context, id, approverID, reason string) (*models.Vacation, error)
	Withdraw(ctx context.Context, id, callerStaffID string, isAdmin bool) error
	ListByStaff(ctx context.Context, staffID string) ([]models.Vacation, error)
}

// DefaultVacationService is the production implementation.
type DefaultVacationService struct {
	Repo     vacationRepo.VacationRepository
	Staff    staffRepo.StaffRepository
	Engine   *scheduling.Engine
	Notifier notification.NotificationService
}
