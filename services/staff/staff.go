package staff

import (
	"context"
	"strings"
	"time"

	"salonflow/models"
	"salonflow/services/scheduling"
	"salonflow/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Provision creates the staff account together with the default weekly
// schedule in one transaction.
func (s *DefaultStaffService) Provision(ctx context.Context, staff models.Staff) (*models.Staff, error) {
	staff.Name = strings.TrimSpace(staff.Name)
	staff.Email = strings.ToLower(strings.TrimSpace(staff.Email))
	if staff.Name == "" || staff.Email == "" {
		return nil, scheduling.NewValidation("name and email are required")
	}
	if len(staff.Password) < 8 {
		return nil, scheduling.NewValidation("password must be at least 8 characters")
	}
	if existing, _ := s.Repo.GetByEmail(ctx, staff.Email); existing != nil {
		return nil, scheduling.NewValidation("email %s is already registered", staff.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(staff.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	staff.ID = uuid.New().String()
	staff.Password = ""
	staff.PasswordHash = string(hash)
	staff.Active = true

	today := time.Now().Format(models.DateLayout)
	schedule := scheduling.DefaultWeeklySchedule(staff.ID, today)
	return s.Repo.ProvisionWithSchedule(ctx, staff, schedule)
}

// Authenticate verifies the credentials and issues a session token. The
// token's hash is stored so middleware can resolve it back to the account.
func (s *DefaultStaffService) Authenticate(ctx context.Context, email, password string) (*AuthSession, error) {
	staff, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, scheduling.NewUnauthorized("invalid email or password")
	}
	if !staff.Active {
		return nil, scheduling.NewUnauthorized("account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return nil, scheduling.NewUnauthorized("invalid email or password")
	}

	token, err := utils.GenerateToken(staff.ID, utils.RoleStaff, utils.SessionTokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetTokenHash(ctx, staff.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}
	return &AuthSession{Token: token, Staff: *staff}, nil
}

// Get returns a staff member by id.
func (s *DefaultStaffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, scheduling.NewNotFound("staff member %s not found", id)
	}
	return staff, nil
}

// List returns all staff members.
func (s *DefaultStaffService) List(ctx context.Context) ([]models.Staff, error) {
	return s.Repo.List(ctx)
}

// UpdateProfile updates mutable profile fields: name, phone and service
// eligibility. Credentials and activation are managed elsewhere.
func (s *DefaultStaffService) UpdateProfile(ctx context.Context, staff models.Staff) (*models.Staff, error) {
	current, err := s.Get(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(staff.Name); name != "" {
		current.Name = name
	}
	if staff.Phone != "" {
		current.Phone = staff.Phone
	}
	if staff.ServiceIDs != nil {
		current.ServiceIDs = staff.ServiceIDs
	}
	return s.Repo.Update(ctx, *current)
}

// Deactivate removes the staff member from booking without deleting history.
func (s *DefaultStaffService) Deactivate(ctx context.Context, id string) error {
	staff, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	staff.Active = false
	staff.TokenHash = ""
	_, err = s.Repo.Update(ctx, *staff)
	return err
}
