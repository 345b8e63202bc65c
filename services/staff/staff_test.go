package staff

import (
	"context"
	"testing"

	"salonflow/models"
	"salonflow/services/scheduling"
	"salonflow/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeStaffRepo struct {
	staff     map[string]models.Staff
	schedules map[string][]models.WorkingHours
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{
		staff:     make(map[string]models.Staff),
		schedules: make(map[string][]models.WorkingHours),
	}
}

func (f *fakeStaffRepo) Create(_ context.Context, s models.Staff) (*models.Staff, error) {
	f.staff[s.ID] = s
	return &s, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*models.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	for _, s := range f.staff {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStaffRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.Staff, error) {
	for _, s := range f.staff {
		if s.TokenHash != "" && s.TokenHash == tokenHash {
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStaffRepo) Update(_ context.Context, s models.Staff) (*models.Staff, error) {
	if _, ok := f.staff[s.ID]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	f.staff[s.ID] = s
	return &s, nil
}

func (f *fakeStaffRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	s, ok := f.staff[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.TokenHash = tokenHash
	f.staff[id] = s
	return nil
}

func (f *fakeStaffRepo) List(_ context.Context) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range f.staff {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStaffRepo) ProvisionWithSchedule(_ context.Context, s models.Staff, schedule []models.WorkingHours) (*models.Staff, error) {
	f.staff[s.ID] = s
	f.schedules[s.ID] = schedule
	return &s, nil
}

func (f *fakeStaffRepo) EnsureIndexes() error { return nil }

func newStaffService() (*DefaultStaffService, *fakeStaffRepo) {
	repo := newFakeStaffRepo()
	return &DefaultStaffService{Repo: repo}, repo
}

func TestProvision_SeedsDefaultSchedule(t *testing.T) {
	svc, repo := newStaffService()
	ctx := context.Background()

	created, err := svc.Provision(ctx, models.Staff{
		Name:     "  Dana Reed ",
		Email:    "Dana@Example.COM",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	if created.ID == "" {
		t.Error("provisioned staff should get an id")
	}
	if created.Name != "Dana Reed" || created.Email != "dana@example.com" {
		t.Errorf("name/email not normalized: %q %q", created.Name, created.Email)
	}
	if created.Password != "" {
		t.Error("plaintext password must not survive provisioning")
	}
	if created.PasswordHash == "" {
		t.Error("password hash should be set")
	}
	if !created.Active {
		t.Error("new staff should be active")
	}
	if got := len(repo.schedules[created.ID]); got != 7 {
		t.Errorf("want 7 seeded working-hours rows, got %d", got)
	}
}

func TestProvision_Rejections(t *testing.T) {
	svc, _ := newStaffService()
	ctx := context.Background()

	if _, err := svc.Provision(ctx, models.Staff{Name: "Dana", Email: "dana@example.com", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("seed Provision: %v", err)
	}

	cases := []struct {
		name string
		in   models.Staff
	}{
		{"missing name", models.Staff{Email: "x@example.com", Password: "hunter2hunter2"}},
		{"missing email", models.Staff{Name: "X", Password: "hunter2hunter2"}},
		{"short password", models.Staff{Name: "X", Email: "x@example.com", Password: "short"}},
		{"duplicate email", models.Staff{Name: "Other", Email: "DANA@example.com", Password: "hunter2hunter2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Provision(ctx, tc.in); scheduling.KindOf(err) != scheduling.KindValidation {
				t.Errorf("want validation error, got %v", err)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc, repo := newStaffService()
	ctx := context.Background()

	created, err := svc.Provision(ctx, models.Staff{Name: "Dana", Email: "dana@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}

	session, err := svc.Authenticate(ctx, " Dana@Example.com ", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if session.Token == "" {
		t.Fatal("session should carry a token")
	}
	if session.Staff.ID != created.ID {
		t.Errorf("session staff = %s, want %s", session.Staff.ID, created.ID)
	}

	id, err := utils.ExtractIDFromToken(session.Token)
	if err != nil || id != created.ID {
		t.Errorf("token subject = %q (%v), want %s", id, err, created.ID)
	}
	role, err := utils.ExtractRoleFromToken(session.Token)
	if err != nil || role != utils.RoleStaff {
		t.Errorf("token role = %q (%v), want %s", role, err, utils.RoleStaff)
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.TokenHash != utils.HashToken(session.Token) {
		t.Error("token hash should be stored for middleware lookup")
	}

	if _, err := svc.Authenticate(ctx, "dana@example.com", "wrong-password"); scheduling.KindOf(err) != scheduling.KindUnauthorized {
		t.Errorf("bad password: want unauthorized, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "hunter2hunter2"); scheduling.KindOf(err) != scheduling.KindUnauthorized {
		t.Errorf("unknown email: want unauthorized, got %v", err)
	}
}

func TestDeactivate_BlocksLoginAndClearsToken(t *testing.T) {
	svc, repo := newStaffService()
	ctx := context.Background()

	created, err := svc.Provision(ctx, models.Staff{Name: "Dana", Email: "dana@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "dana@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	if err := svc.Deactivate(ctx, created.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.Active {
		t.Error("deactivated staff should be inactive")
	}
	if stored.TokenHash != "" {
		t.Error("deactivation should revoke the stored session")
	}
	if _, err := svc.Authenticate(ctx, "dana@example.com", "hunter2hunter2"); scheduling.KindOf(err) != scheduling.KindUnauthorized {
		t.Errorf("deactivated login: want unauthorized, got %v", err)
	}
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	svc, _ := newStaffService()
	ctx := context.Background()

	created, err := svc.Provision(ctx, models.Staff{Name: "Dana", Email: "dana@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, models.Staff{ID: created.ID, Phone: "555-0100", ServiceIDs: []string{"svc-1"}})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Dana" {
		t.Errorf("empty name should keep current, got %q", updated.Name)
	}
	if updated.Phone != "555-0100" {
		t.Errorf("phone = %q", updated.Phone)
	}
	if len(updated.ServiceIDs) != 1 || updated.ServiceIDs[0] != "svc-1" {
		t.Errorf("serviceIds = %v", updated.ServiceIDs)
	}
}
