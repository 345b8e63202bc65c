package scheduling

import (
	"context"

	"salonflow/models"
)

// ComputeSlots returns the ordered bookable start windows for one staff
// member, date and service duration. The scan walks candidate starts from
// the opening of the working window to the last start that still fits the
// duration, stepping on the 15-minute grid, and drops any candidate that
// crosses a break or an existing live booking. The result is recomputed
// fresh on every call.
func (e *Engine) ComputeSlots(ctx context.Context, staffID, date string, durationMinutes int) ([]models.Slot, error) {
	if durationMinutes <= 0 {
		return nil, NewValidation("service duration must be positive, got %d", durationMinutes)
	}
	if !validDate(date) {
		return nil, NewValidation("invalid date %q", date)
	}

	// Slots are never offered for dates already behind us.
	if date < e.today() {
		return nil, nil
	}

	wh, err := e.currentWorkingHours(ctx, staffID, date)
	if err != nil {
		return nil, err
	}
	if wh == nil || !wh.IsWorkingDay {
		return nil, nil
	}

	onVacation, err := e.Vacations.FindApprovedCovering(ctx, staffID, date)
	if err != nil {
		return nil, err
	}
	if len(onVacation) > 0 {
		return nil, nil
	}

	booked, err := e.Appointments.ListBlockingByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, err
	}
	busy := make([]models.Interval, 0, len(booked)+len(wh.Breaks))
	busy = append(busy, wh.Breaks...)
	for _, appt := range booked {
		busy = append(busy, appt.TimeWindow())
	}

	var slots []models.Slot
	duration := models.TimeOfDay(durationMinutes)
	for t := wh.Window.Start; t+duration <= wh.Window.End; t += SlotGranularityMinutes {
		cand := models.Interval{Start: t, End: t + duration}
		if overlapsAny(cand, busy) {
			continue
		}
		slots = append(slots, models.Slot{
			Date:     date,
			Start:    cand.Start,
			End:      cand.End,
			Duration: durationMinutes,
		})
	}
	return slots, nil
}

func overlapsAny(cand models.Interval, busy []models.Interval) bool {
	for _, iv := range busy {
		if cand.Overlaps(iv) {
			return true
		}
	}
	return false
}
