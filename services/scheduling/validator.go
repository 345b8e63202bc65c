package scheduling

import (
	"context"

	"salonflow/models"
)

// ValidateAppointment runs the ordered conflict checks for a candidate
// booking. The first failing check determines the rejection kind; a nil
// return clears the candidate for persistence.
//
// Check order is fixed: booking conflict, staff unavailable, outside working
// hours, break conflict, vacation conflict.
func (e *Engine) ValidateAppointment(ctx context.Context, cand AppointmentCandidate) error {
	if !cand.End.After(cand.Start) {
		return NewValidation("appointment end %s must be after start %s", cand.End, cand.Start)
	}
	date := cand.Start.Format(models.DateLayout)
	if cand.End.Format(models.DateLayout) != date {
		return NewValidation("appointment may not cross midnight")
	}
	window := models.Interval{
		Start: models.MinutesOfDay(cand.Start),
		End:   models.MinutesOfDay(cand.End),
	}

	// 1. Booking conflict with another live appointment.
	overlapping, err := e.Appointments.FindOverlapping(ctx, cand.StaffID, cand.Start, cand.End, cand.ExcludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		other := overlapping[0]
		return NewBookingConflict("staff member already booked %s-%s on %s",
			models.MinutesOfDay(other.Date), models.MinutesOfDay(other.EndTime), other.DateString())
	}

	// 2. Staff not working that day at all.
	wh, err := e.currentWorkingHours(ctx, cand.StaffID, date)
	if err != nil {
		return err
	}
	if wh == nil || !wh.IsWorkingDay {
		return NewStaffUnavailable("staff member does not work on %s", cand.Start.Weekday())
	}

	// 3. Candidate falls outside the working window.
	if !wh.Window.Contains(window) {
		return NewOutsideWorkingHours("requested %s-%s is outside working hours %s-%s",
			window.Start, window.End, wh.Window.Start, wh.Window.End)
	}

	// 4. Candidate crosses a break.
	for _, br := range wh.Breaks {
		if window.Overlaps(br) {
			return NewBreakConflict("requested %s-%s overlaps break %s-%s",
				window.Start, window.End, br.Start, br.End)
		}
	}

	// 5. Approved vacation covers the date.
	vacations, err := e.Vacations.FindApprovedCovering(ctx, cand.StaffID, date)
	if err != nil {
		return err
	}
	if len(vacations) > 0 {
		v := vacations[0]
		return NewVacationConflict("staff member is on vacation %s to %s", v.StartDate, v.EndDate)
	}

	return nil
}

// ValidateVacation enforces the vacation write invariants: well-formed
// inclusive range and no overlap with another pending or approved vacation
// for the same staff member. Unlike appointment conflicts, an overlap here
// always blocks the write.
func (e *Engine) ValidateVacation(ctx context.Context, cand VacationCandidate) error {
	if err := validDateRange(cand.StartDate, cand.EndDate); err != nil {
		return err
	}
	overlapping, err := e.Vacations.FindLiveOverlapping(ctx, cand.StaffID, cand.StartDate, cand.EndDate, cand.ExcludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		other := overlapping[0]
		return NewVacationOverlap("requested range overlaps %s vacation %s to %s",
			other.Status, other.StartDate, other.EndDate)
	}
	return nil
}

// ConflictingAppointments reports the live appointments falling inside an
// inclusive date range. Vacation approval uses this as advisory data: the
// approval succeeds and humans resolve the reschedules.
func (e *Engine) ConflictingAppointments(ctx context.Context, staffID, startDate, endDate string) ([]models.Appointment, error) {
	return e.Appointments.ListBlockingByStaffAndDateRange(ctx, staffID, startDate, endDate)
}

func validDateRange(startDate, endDate string) error {
	if !validDate(startDate) {
		return NewValidation("invalid start date %q", startDate)
	}
	if !validDate(endDate) {
		return NewValidation("invalid end date %q", endDate)
	}
	if endDate <= startDate {
		return NewValidation("end date %s must be after start date %s", endDate, startDate)
	}
	return nil
}
