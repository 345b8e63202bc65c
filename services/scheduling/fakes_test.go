package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salonflow/models"
)

// In-memory repository fakes backing the engine tests.

type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	f.appts = append(f.appts, appt)
	return &appt, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			a := f.appts[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appt models.Appointment) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == appt.ID {
			f.appts[i] = appt
			return &appt, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", appt.ID)
}

func (f *fakeAppointmentRepo) ListBlockingByStaffAndDate(_ context.Context, staffID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.StaffID == staffID && a.Status.Blocking() && a.DateString() == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListBlockingByStaffAndDateRange(_ context.Context, staffID, startDate, endDate string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		d := a.DateString()
		if a.StaffID == staffID && a.Status.Blocking() && d >= startDate && d <= endDate {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindOverlapping(_ context.Context, staffID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.StaffID != staffID || !a.Status.Blocking() || a.ID == excludeID {
			continue
		}
		if a.Date.Before(end) && a.EndTime.After(start) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CountBlockingOnDate(ctx context.Context, staffID, date string) (int64, error) {
	appts, err := f.ListBlockingByStaffAndDate(ctx, staffID, date)
	return int64(len(appts)), err
}

func (f *fakeAppointmentRepo) ListByClient(_ context.Context, clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) MarkReminderSent(_ context.Context, id string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].ReminderSent = true
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) MarkConfirmationSent(_ context.Context, id string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].ConfirmationSent = true
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) EnsureIndexes() error { return nil }

type fakeScheduleRepo struct {
	records []models.WorkingHours
}

func (f *fakeScheduleRepo) Create(_ context.Context, wh models.WorkingHours) (*models.WorkingHours, error) {
	if wh.ID == "" {
		wh.ID = uuid.New().String()
	}
	f.records = append(f.records, wh)
	return &wh, nil
}

func (f *fakeScheduleRepo) CreateMany(ctx context.Context, records []models.WorkingHours) error {
	for _, wh := range records {
		if _, err := f.Create(ctx, wh); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeScheduleRepo) GetCurrent(_ context.Context, staffID string, day time.Weekday, onDate string) (*models.WorkingHours, error) {
	var best *models.WorkingHours
	for i := range f.records {
		wh := f.records[i]
		if wh.StaffID != staffID || wh.DayOfWeek != day || !wh.CoversDate(onDate) {
			continue
		}
		if best == nil || wh.EffectiveFrom > best.EffectiveFrom {
			best = &f.records[i]
		}
	}
	if best == nil {
		return nil, nil
	}
	copied := *best
	return &copied, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, wh models.WorkingHours) (*models.WorkingHours, error) {
	for i := range f.records {
		if f.records[i].ID == wh.ID {
			f.records[i] = wh
			return &wh, nil
		}
	}
	return nil, fmt.Errorf("working hours %s not found", wh.ID)
}

func (f *fakeScheduleRepo) ListByStaff(_ context.Context, staffID string) ([]models.WorkingHours, error) {
	var out []models.WorkingHours
	for _, wh := range f.records {
		if wh.StaffID == staffID {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) EnsureIndexes() error { return nil }

type fakeVacationRepo struct {
	vacations []models.Vacation
}

func (f *fakeVacationRepo) Create(_ context.Context, v models.Vacation) (*models.Vacation, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	f.vacations = append(f.vacations, v)
	return &v, nil
}

func (f *fakeVacationRepo) GetByID(_ context.Context, id string) (*models.Vacation, error) {
	for i := range f.vacations {
		if f.vacations[i].ID == id {
			v := f.vacations[i]
			return &v, nil
		}
	}
	return nil, fmt.Errorf("vacation %s not found", id)
}

func (f *fakeVacationRepo) Update(_ context.Context, v models.Vacation) (*models.Vacation, error) {
	for i := range f.vacations {
		if f.vacations[i].ID == v.ID {
			f.vacations[i] = v
			return &v, nil
		}
	}
	return nil, fmt.Errorf("vacation %s not found", v.ID)
}

func (f *fakeVacationRepo) Delete(_ context.Context, id string) error {
	for i := range f.vacations {
		if f.vacations[i].ID == id {
			f.vacations = append(f.vacations[:i], f.vacations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("vacation %s not found", id)
}

func (f *fakeVacationRepo) ListByStaff(_ context.Context, staffID string) ([]models.Vacation, error) {
	var out []models.Vacation
	for _, v := range f.vacations {
		if v.StaffID == staffID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) FindLiveOverlapping(_ context.Context, staffID, startDate, endDate, excludeID string) ([]models.Vacation, error) {
	var out []models.Vacation
	for _, v := range f.vacations {
		if v.StaffID != staffID || v.ID == excludeID {
			continue
		}
		if v.Status != models.VacationPending && v.Status != models.VacationApproved {
			continue
		}
		if v.OverlapsRange(startDate, endDate) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) FindApprovedCovering(_ context.Context, staffID, date string) ([]models.Vacation, error) {
	var out []models.Vacation
	for _, v := range f.vacations {
		if v.StaffID == staffID && v.Status == models.VacationApproved && v.CoversDate(date) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) EnsureIndexes() error { return nil }

// newTestEngine builds an engine over fresh fakes. The clock is pinned to
// Monday 2026-06-01 so the date fixtures stay a week in the future.
func newTestEngine() (*Engine, *fakeAppointmentRepo, *fakeScheduleRepo, *fakeVacationRepo) {
	appts := &fakeAppointmentRepo{}
	schedules := &fakeScheduleRepo{}
	vacations := &fakeVacationRepo{}
	engine := NewEngine(appts, schedules, vacations)
	engine.Clock = func() time.Time {
		return time.Date(2026, time.June, 1, 8, 0, 0, 0, time.Local)
	}
	return engine, appts, schedules, vacations
}
