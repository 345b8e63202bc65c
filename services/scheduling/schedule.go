package scheduling

import (
	"context"
	"fmt"
	"time"

	"salonflow/models"
)

// UpsertWorkingDay applies a partial update to the staff member's current
// record for one weekday, creating the record if none exists. Breaks replace
// the stored array wholesale when provided. Turning a working day off is
// refused while future live appointments exist on the next occurrence of
// that weekday, so bookings are never silently orphaned.
func (e *Engine) UpsertWorkingDay(ctx context.Context, staffID string, day time.Weekday, patch models.WorkingHoursPatch) (*models.WorkingHours, error) {
	if day < time.Sunday || day > time.Saturday {
		return nil, NewValidation("invalid day of week: %d", day)
	}
	today := e.today()

	wh, err := e.Schedules.GetCurrent(ctx, staffID, day, today)
	if err != nil {
		return nil, err
	}

	if wh == nil {
		created := models.WorkingHours{
			StaffID:       staffID,
			DayOfWeek:     day,
			IsWorkingDay:  true,
			EffectiveFrom: today,
			Effectivity:   models.Current(),
		}
		applyPatch(&created, patch)
		if err := created.Validate(); err != nil {
			return nil, NewValidation("%s", err)
		}
		return e.Schedules.Create(ctx, created)
	}

	turningOff := wh.IsWorkingDay && patch.IsWorkingDay != nil && !*patch.IsWorkingDay
	if turningOff {
		next := nextWeekdayOnOrAfter(e.now(), day)
		count, err := e.Appointments.CountBlockingOnDate(ctx, staffID, next)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, &Error{
				Kind:    KindBookingConflict,
				Message: fmt.Sprintf("%d appointment(s) already booked on %s; reschedule them before disabling this day", count, next),
				Count:   int(count),
			}
		}
	}

	updated := *wh
	applyPatch(&updated, patch)
	if !updated.IsWorkingDay {
		updated.Breaks = nil
	}
	if err := updated.Validate(); err != nil {
		return nil, NewValidation("%s", err)
	}
	return e.Schedules.Update(ctx, updated)
}

// DefaultWeeklySchedule is the provisioning template: Monday through Friday
// 09:00-18:00 with a 12:00-13:00 break, weekends off.
func DefaultWeeklySchedule(staffID string, effectiveFrom string) []models.WorkingHours {
	records := make([]models.WorkingHours, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		wh := models.WorkingHours{
			StaffID:       staffID,
			DayOfWeek:     day,
			EffectiveFrom: effectiveFrom,
			Effectivity:   models.Current(),
		}
		if day != time.Sunday && day != time.Saturday {
			wh.IsWorkingDay = true
			wh.Window = models.Interval{Start: 9 * 60, End: 18 * 60}
			wh.Breaks = []models.Interval{{Start: 12 * 60, End: 13 * 60}}
		}
		records = append(records, wh)
	}
	return records
}

func applyPatch(wh *models.WorkingHours, patch models.WorkingHoursPatch) {
	if patch.IsWorkingDay != nil {
		wh.IsWorkingDay = *patch.IsWorkingDay
	}
	if patch.Window != nil {
		wh.Window = *patch.Window
	}
	if patch.Breaks != nil {
		wh.Breaks = *patch.Breaks
	}
}

// nextWeekdayOnOrAfter returns the first date on or after now that falls on
// the given weekday.
func nextWeekdayOnOrAfter(now time.Time, day time.Weekday) string {
	offset := (int(day) - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, offset).Format(models.DateLayout)
}
