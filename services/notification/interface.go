package notification

import (
	"context"

	notificationRepo "salonflow/database/repository/notification"
	"salonflow/models"

	"github.com/hibiken/asynq"
)

// NotificationService defines the outbound messages the booking flows emit.
// All sends are best-effort: callers log failures and carry on, a booking is
// never rolled back because a message could not be delivered.
type NotificationService interface {
	SendConfirmation(ctx context.Context, appt models.Appointment) error
	SendCancellation(ctx context.Context, appt models.Appointment) error
	SendVacationDecision(ctx context.Context, v models.Vacation) error
	SendReminder(ctx context.Context, p models.ReminderPayload) error

	// ScheduleReminder enqueues a delayed reminder task for the appointment.
	ScheduleReminder(ctx context.Context, appt models.Appointment) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	records notificationRepo.NotificationRepository
	queue   *asynq.Client
}

// NewDefaultNotificationService wires the service. The asynq client may be
// nil, in which case reminder scheduling becomes a no-op (useful in tests).
func NewDefaultNotificationService(records notificationRepo.NotificationRepository, queue *asynq.Client) *DefaultNotificationService {
	return &DefaultNotificationService{
		records: records,
		queue:   queue,
	}
}
