package notification

import (
	"context"
	"fmt"
	"time"

	"salonflow/config"
	"salonflow/models"
	"salonflow/services/tasks"
	"salonflow/utils"

	"go.uber.org/zap"
)

const (
	KindConfirmation     = "confirmation"
	KindReminder         = "reminder"
	KindCancellation     = "cancellation"
	KindVacationDecision = "vacation-decision"
)

// SendConfirmation notifies the client that their booking was accepted.
func (s *DefaultNotificationService) SendConfirmation(ctx context.Context, appt models.Appointment) error {
	title := "Appointment booked"
	body := fmt.Sprintf("You are booked on %s from %s to %s.",
		appt.DateString(),
		models.MinutesOfDay(appt.Date),
		models.MinutesOfDay(appt.EndTime),
	)
	return s.record(ctx, appt.ClientID, KindConfirmation, title, body)
}

// SendCancellation notifies the client that their booking was cancelled.
func (s *DefaultNotificationService) SendCancellation(ctx context.Context, appt models.Appointment) error {
	title := "Appointment cancelled"
	body := fmt.Sprintf("Your appointment on %s at %s was cancelled: %s",
		appt.DateString(), models.MinutesOfDay(appt.Date), appt.CancelReason)
	return s.record(ctx, appt.ClientID, KindCancellation, title, body)
}

// SendVacationDecision notifies the staff member about the outcome of their
// vacation request.
func (s *DefaultNotificationService) SendVacationDecision(ctx context.Context, v models.Vacation) error {
	title := fmt.Sprintf("Vacation request %s", v.Status)
	body := fmt.Sprintf("Your vacation %s to %s is now %s.", v.StartDate, v.EndDate, v.Status)
	if v.Status == models.VacationRejected && v.RejectionReason != "" {
		body += " Reason: " + v.RejectionReason
	}
	return s.record(ctx, v.StaffID, KindVacationDecision, title, body)
}

// SendReminder delivers a previously scheduled reminder.
func (s *DefaultNotificationService) SendReminder(ctx context.Context, p models.ReminderPayload) error {
	return s.record(ctx, p.ClientID, KindReminder, p.Title, p.Body)
}

// ScheduleReminder enqueues a reminder task to fire ahead of the
// appointment start. Appointments starting sooner than the lead time get no
// reminder.
func (s *DefaultNotificationService) ScheduleReminder(ctx context.Context, appt models.Appointment) error {
	if s.queue == nil {
		return nil
	}
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := appt.Date.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		ClientID:      appt.ClientID,
		StaffID:       appt.StaffID,
		Title:         "Upcoming appointment",
		Body: fmt.Sprintf("Reminder: your appointment starts at %s on %s.",
			models.MinutesOfDay(appt.Date), appt.DateString()),
		FireDate: fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.queue.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for appointment %s: %w", appt.ID, err)
	}
	return nil
}

// record persists the message and logs it. Delivery is the log line; there
// is no external push channel.
func (s *DefaultNotificationService) record(ctx context.Context, recipientID, kind, title, body string) error {
	logger := utils.GetLogger()
	logger.Info("notification",
		zap.String("recipient", recipientID),
		zap.String("kind", kind),
		zap.String("title", title),
		zap.String("body", body),
	)
	if s.records == nil {
		return nil
	}
	_, err := s.records.Create(ctx, models.Notification{
		RecipientID: recipientID,
		Kind:        kind,
		Title:       title,
		Body:        body,
		Sent:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to record %s notification: %w", kind, err)
	}
	return nil
}
