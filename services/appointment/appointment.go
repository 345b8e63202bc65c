package appointment

import (
	"context"
	"time"

	"salonflow/models"
	"salonflow/services/scheduling"
	"salonflow/utils"

	"go.uber.org/zap"
)

// DefaultCancelReason is recorded when a cancellation arrives without one.
const DefaultCancelReason = "cancelled by requester"

// Book validates and persists a new appointment. The booking runs under the
// staff member's lock so two clients racing for the same window cannot both
// pass validation.
func (s *DefaultAppointmentService) Book(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.ClientID == "" {
		return nil, scheduling.NewValidation("clientId is required")
	}
	svc, staff, err := s.resolveServiceAndStaff(ctx, req.ServiceID, req.StaffID)
	if err != nil {
		return nil, err
	}

	start := req.Date
	end := start.Add(time.Duration(svc.Duration) * time.Minute)

	token, ok, err := s.Locker.AcquireStaffLock(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, scheduling.NewBookingConflict("another booking for this staff member is in progress, try again")
	}
	defer func() {
		if err := s.Locker.ReleaseStaffLock(ctx, staff.ID, token); err != nil {
			utils.GetLogger().Warn("failed to release staff lock",
				zap.String("staffId", staff.ID), zap.Error(err))
		}
	}()

	cand := scheduling.AppointmentCandidate{
		StaffID: staff.ID,
		Start:   start,
		End:     end,
	}
	if err := s.Engine.ValidateAppointment(ctx, cand); err != nil {
		return nil, err
	}

	created, err := s.Repo.Create(ctx, models.Appointment{
		ClientID:  req.ClientID,
		StaffID:   staff.ID,
		ServiceID: svc.ID,
		Date:      start,
		EndTime:   end,
		Status:    models.AppointmentPending,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.notifyBooked(ctx, *created)
	return created, nil
}

// Get returns an appointment by id.
func (s *DefaultAppointmentService) Get(ctx context.Context, id, callerClientID string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, scheduling.NewNotFound("appointment %s not found", id)
	}
	if callerClientID != "" && appt.ClientID != callerClientID {
		return nil, scheduling.NewUnauthorized("appointment %s belongs to another client", id)
	}
	return appt, nil
}

// Update applies a partial update. Changing the date, service or staff
// member re-derives the end time and re-runs the full conflict validation
// with the appointment excluded from its own booking-conflict check; edits
// to notes alone skip revalidation. Cancellation is refused here: it records
// who cancelled and why and sends a notice, so it only runs through Cancel.
func (s *DefaultAppointmentService) Update(ctx context.Context, id, callerClientID string, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id, callerClientID)
	if err != nil {
		return nil, err
	}
	if appt.Status.Terminal() {
		return nil, scheduling.NewInvalidState("appointment %s is %s and can no longer be changed", id, appt.Status)
	}

	updated := *appt
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.Status != nil && *req.Status != updated.Status {
		if *req.Status == models.AppointmentCancelled {
			return nil, scheduling.NewValidation("appointments are cancelled through the cancel operation, not a status update")
		}
		if !canTransition(updated.Status, *req.Status) {
			return nil, scheduling.NewInvalidState("appointment may not move from %s to %s", updated.Status, *req.Status)
		}
		updated.Status = *req.Status
	}

	reschedule := req.Date != nil || req.ServiceID != nil || req.StaffID != nil
	if reschedule {
		if req.Date != nil {
			updated.Date = *req.Date
		}
		if req.ServiceID != nil {
			updated.ServiceID = *req.ServiceID
		}
		if req.StaffID != nil {
			updated.StaffID = *req.StaffID
		}

		svc, staff, err := s.resolveServiceAndStaff(ctx, updated.ServiceID, updated.StaffID)
		if err != nil {
			return nil, err
		}
		updated.EndTime = updated.Date.Add(time.Duration(svc.Duration) * time.Minute)

		token, ok, err := s.Locker.AcquireStaffLock(ctx, staff.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, scheduling.NewBookingConflict("another booking for this staff member is in progress, try again")
		}
		defer func() {
			if err := s.Locker.ReleaseStaffLock(ctx, staff.ID, token); err != nil {
				utils.GetLogger().Warn("failed to release staff lock",
					zap.String("staffId", staff.ID), zap.Error(err))
			}
		}()

		cand := scheduling.AppointmentCandidate{
			StaffID:   staff.ID,
			Start:     updated.Date,
			End:       updated.EndTime,
			ExcludeID: updated.ID,
		}
		if err := s.Engine.ValidateAppointment(ctx, cand); err != nil {
			return nil, err
		}
	}

	return s.Repo.Update(ctx, updated)
}

// Confirm moves a pending appointment to confirmed.
func (s *DefaultAppointmentService) Confirm(ctx context.Context, id string) (*models.Appointment, error) {
	return s.transition(ctx, id, models.AppointmentConfirmed)
}

// Cancel releases the appointment's window. Terminal appointments cannot be
// cancelled again.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, callerClientID, cancelledBy, reason string) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id, callerClientID)
	if err != nil {
		return nil, err
	}
	if appt.Status.Terminal() {
		return nil, scheduling.NewInvalidState("appointment %s is already %s", id, appt.Status)
	}
	if cancelledBy == "" {
		return nil, scheduling.NewValidation("the cancelling party must be recorded")
	}
	if reason == "" {
		reason = DefaultCancelReason
	}

	updated := *appt
	updated.Status = models.AppointmentCancelled
	updated.CancelledBy = cancelledBy
	updated.CancelReason = reason

	saved, err := s.Repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		if err := s.Notifier.SendCancellation(ctx, *saved); err != nil {
			utils.GetLogger().Warn("cancellation notification failed",
				zap.String("appointmentId", saved.ID), zap.Error(err))
		}
	}
	return saved, nil
}

// Complete marks a confirmed appointment as done.
func (s *DefaultAppointmentService) Complete(ctx context.Context, id string) (*models.Appointment, error) {
	return s.transition(ctx, id, models.AppointmentCompleted)
}

// MarkNoShow records that the client did not turn up. Only confirmed
// appointments can be no-shows.
func (s *DefaultAppointmentService) MarkNoShow(ctx context.Context, id string) (*models.Appointment, error) {
	return s.transition(ctx, id, models.AppointmentNoShow)
}

// ListForStaffDay returns the live appointments for a staff member's day.
func (s *DefaultAppointmentService) ListForStaffDay(ctx context.Context, staffID, date string) ([]models.Appointment, error) {
	return s.Repo.ListBlockingByStaffAndDate(ctx, staffID, date)
}

// ListForClient returns all appointments ever made by a client.
func (s *DefaultAppointmentService) ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return s.Repo.ListByClient(ctx, clientID)
}

func (s *DefaultAppointmentService) transition(ctx context.Context, id string, to models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id, "")
	if err != nil {
		return nil, err
	}
	if !canTransition(appt.Status, to) {
		return nil, scheduling.NewInvalidState("appointment may not move from %s to %s", appt.Status, to)
	}
	updated := *appt
	updated.Status = to
	return s.Repo.Update(ctx, updated)
}

// canTransition encodes the appointment state machine. Cancellation is
// allowed from any live state; completion and no-show require a confirmed
// appointment.
func canTransition(from, to models.AppointmentStatus) bool {
	switch to {
	case models.AppointmentConfirmed:
		return from == models.AppointmentPending
	case models.AppointmentCancelled:
		return !from.Terminal()
	case models.AppointmentCompleted, models.AppointmentNoShow:
		return from == models.AppointmentConfirmed
	}
	return false
}

// resolveServiceAndStaff loads and checks the booking's service and staff
// member: both must exist and be active, and the staff member must offer the
// service.
func (s *DefaultAppointmentService) resolveServiceAndStaff(ctx context.Context, serviceID, staffID string) (*models.Service, *models.Staff, error) {
	svc, err := s.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, nil, scheduling.NewNotFound("service %s not found", serviceID)
	}
	if !svc.Active {
		return nil, nil, scheduling.NewValidation("service %s is not bookable", svc.Name)
	}
	if svc.Duration <= 0 {
		return nil, nil, scheduling.NewValidation("service %s has no duration", svc.Name)
	}

	staff, err := s.Staff.GetByID(ctx, staffID)
	if err != nil {
		return nil, nil, scheduling.NewNotFound("staff member %s not found", staffID)
	}
	if !staff.Active {
		return nil, nil, scheduling.NewStaffUnavailable("staff member %s is not active", staff.Name)
	}
	if !staff.OffersService(svc.ID) {
		return nil, nil, scheduling.NewValidation("staff member %s does not offer %s", staff.Name, svc.Name)
	}
	return svc, staff, nil
}

// notifyBooked fires the confirmation and schedules the reminder. Failures
// are logged and swallowed.
func (s *DefaultAppointmentService) notifyBooked(ctx context.Context, appt models.Appointment) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()
	if err := s.Notifier.SendConfirmation(ctx, appt); err != nil {
		logger.Warn("confirmation notification failed",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	} else if err := s.Repo.MarkConfirmationSent(ctx, appt.ID); err != nil {
		logger.Warn("failed to flag confirmation as sent",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
	if err := s.Notifier.ScheduleReminder(ctx, appt); err != nil {
		logger.Warn("reminder scheduling failed",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
