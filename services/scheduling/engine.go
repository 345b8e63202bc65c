package scheduling

import (
	"context"
	"time"

	appointmentRepo "salonflow/database/repository/appointment"
	scheduleRepo "salonflow/database/repository/schedule"
	vacationRepo "salonflow/database/repository/vacation"
	"salonflow/models"
)

// SlotGranularityMinutes is the scan step for candidate slot starts. It
// bounds the slot count per day to (workEnd-workStart)/15 and keeps
// off-grid start times out by policy.
const SlotGranularityMinutes = 15

// Engine is the scheduling and conflict-resolution core. It computes free
// slots, validates candidate appointments and vacations against the layered
// availability rules, and manages weekly schedule updates. All record access
// goes through the injected repositories.
type Engine struct {
	Appointments appointmentRepo.AppointmentRepository
	Schedules    scheduleRepo.ScheduleRepository
	Vacations    vacationRepo.VacationRepository

	// Clock overrides the time source. Nil means time.Now; tests pin it.
	Clock func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now()
}

func (e *Engine) today() string {
	return e.now().Format(models.DateLayout)
}

// NewEngine wires an Engine with its typed repositories.
func NewEngine(
	appointments appointmentRepo.AppointmentRepository,
	schedules scheduleRepo.ScheduleRepository,
	vacations vacationRepo.VacationRepository,
) *Engine {
	return &Engine{
		Appointments: appointments,
		Schedules:    schedules,
		Vacations:    vacations,
	}
}

// AppointmentCandidate is a booking about to be written. ExcludeID carries
// the appointment's own id on update so it does not conflict with itself.
type AppointmentCandidate struct {
	StaffID   string
	Start     time.Time
	End       time.Time
	ExcludeID string
}

// VacationCandidate is a vacation about to be written.
type VacationCandidate struct {
	StaffID   string
	StartDate string
	EndDate   string
	ExcludeID string
}

// currentWorkingHours resolves the schedule record in force for the
// candidate date, or nil when the staff member has none for that weekday.
func (e *Engine) currentWorkingHours(ctx context.Context, staffID, date string) (*models.WorkingHours, error) {
	day, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return nil, NewValidation("invalid date %q", date)
	}
	return e.Schedules.GetCurrent(ctx, staffID, day.Weekday(), date)
}

func validDate(s string) bool {
	_, err := time.ParseInLocation(models.DateLayout, s, time.Local)
	return err == nil
}
