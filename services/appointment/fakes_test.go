package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salonflow/models"
	"salonflow/services/scheduling"
)

// In-memory fakes backing the booking-flow tests.

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

type fakeServiceRepo struct {
	services []models.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, svc models.Service) (*models.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	f.services = append(f.services, svc)
	return &svc, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			s := f.services[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

func (f *fakeServiceRepo) Update(_ context.Context, svc models.Service) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == svc.ID {
			f.services[i] = svc
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", svc.ID)
}

func (f *fakeServiceRepo) Delete(_ context.Context, id string) error {
	for i := range f.services {
		if f.services[i].ID == id {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("service %s not found", id)
}

func (f *fakeServiceRepo) ListActive(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) EnsureIndexes() error { return nil }

type fakeStaffRepo struct {
	staff []models.Staff
}

func (f *fakeStaffRepo) Create(_ context.Context, s models.Staff) (*models.Staff, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	f.staff = append(f.staff, s)
	return &s, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*models.Staff, error) {
	for i := range f.staff {
		if f.staff[i].ID == id {
			s := f.staff[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", id)
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	for i := range f.staff {
		if f.staff[i].Email == email {
			s := f.staff[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff with email %s not found", email)
}

func (f *fakeStaffRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.Staff, error) {
	for i := range f.staff {
		if f.staff[i].TokenHash == tokenHash {
			s := f.staff[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("no staff for token")
}

func (f *fakeStaffRepo) Update(_ context.Context, s models.Staff) (*models.Staff, error) {
	for i := range f.staff {
		if f.staff[i].ID == s.ID {
			f.staff[i] = s
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", s.ID)
}

func (f *fakeStaffRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	for i := range f.staff {
		if f.staff[i].ID == id {
			f.staff[i].TokenHash = tokenHash
			return nil
		}
	}
	return fmt.Errorf("staff %s not found", id)
}

func (f *fakeStaffRepo) List(_ context.Context) ([]models.Staff, error) {
	return append([]models.Staff(nil), f.staff...), nil
}

func (f *fakeStaffRepo) ProvisionWithSchedule(ctx context.Context, s models.Staff, schedule []models.WorkingHours) (*models.Staff, error) {
	return f.Create(ctx, s)
}

func (f *fakeStaffRepo) EnsureIndexes() error { return nil }

type fakeClientRepo struct {
	clients []models.Client
}

func (f *fakeClientRepo) Create(_ context.Context, c models.Client) (*models.Client, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	f.clients = append(f.clients, c)
	return &c, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			c := f.clients[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("client %s not found", id)
}

func (f *fakeClientRepo) GetByEmail(_ context.Context, email string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].Email == email {
			c := f.clients[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("client with email %s not found", email)
}

func (f *fakeClientRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].TokenHash == tokenHash {
			c := f.clients[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("no client for token")
}

func (f *fakeClientRepo) Update(_ context.Context, c models.Client) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == c.ID {
			f.clients[i] = c
			return &c, nil
		}
	}
	return nil, fmt.Errorf("client %s not found", c.ID)
}

func (f *fakeClientRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	for i := range f.clients {
		if f.clients[i].ID == id {
			f.clients[i].TokenHash = tokenHash
			return nil
		}
	}
	return fmt.Errorf("client %s not found", id)
}

func (f *fakeClientRepo) EnsureIndexes() error { return nil }

// fakeLocker hands the lock out freely unless told to hold it.
type fakeLocker struct {
	held     bool
	acquires int
	releases int
}

func (f *fakeLocker) AcquireStaffLock(_ context.Context, _ string) (string, bool, error) {
	f.acquires++
	if f.held {
		return "", false, nil
	}
	return "tok", true, nil
}

func (f *fakeLocker) ReleaseStaffLock(_ context.Context, _, _ string) error {
	f.releases++
	return nil
}

// fakeNotifier records what was sent.
type fakeNotifier struct {
	confirmations []string
	cancellations []string
	decisions     []string
	reminders     []string
}

func (f *fakeNotifier) SendConfirmation(_ context.Context, appt models.Appointment) error {
	f.confirmations = append(f.confirmations, appt.ID)
	return nil
}

func (f *fakeNotifier) SendCancellation(_ context.Context, appt models.Appointment) error {
	f.cancellations = append(f.cancellations, appt.ID)
	return nil
}

func (f *fakeNotifier) SendVacationDecision(_ context.Context, v models.Vacation) error {
	f.decisions = append(f.decisions, v.ID)
	return nil
}

func (f *fakeNotifier) SendReminder(_ context.Context, p models.ReminderPayload) error {
	f.reminders = append(f.reminders, p.AppointmentID)
	return nil
}

func (f *fakeNotifier) ScheduleReminder(_ context.Context, appt models.Appointment) error {
	return nil
}

type testEnv struct {
	svc       *DefaultAppointmentService
	appts     *fakeAppointmentRepo
	schedules *fakeScheduleRepo
	vacations *fakeVacationRepo
	locker    *fakeLocker
	notifier  *fakeNotifier
}

func newTestService() *testEnv {
	appts := &fakeAppointmentRepo{}
	schedules := &fakeScheduleRepo{}
	vacations := &fakeVacationRepo{}
	locker := &fakeLocker{}
	notifier := &fakeNotifier{}

	services := &fakeServiceRepo{services: []models.Service{
		{ID: "svc-1", Name: "Haircut", Duration: 60, Active: true},
		{ID: "svc-2", Name: "Coloring", Duration: 90, Active: true},
		{ID: "svc-off", Name: "Retired", Duration: 30, Active: false},
	}}
	staff := &fakeStaffRepo{staff: []models.Staff{
		{ID: "staff-1", Name: "Dana", Active: true},
		{ID: "staff-2", Name: "Riley", Active: true, ServiceIDs: []string{"svc-2"}},
		{ID: "staff-idle", Name: "Gone", Active: false},
	}}

	return &testEnv{
		svc: &DefaultAppointmentService{
			Repo:     appts,
			Services: services,
			Staff:    staff,
			Clients:  &fakeClientRepo{},
			Engine:   scheduling.NewEngine(appts, schedules, vacations),
			Locker:   locker,
			Notifier: notifier,
		},
		appts:     appts,
		schedules: schedules,
		vacations: vacations,
		locker:    locker,
		notifier:  notifier,
	}
}
