package staff

import (
	"context"

	staffRepo "salonflow/database/repository/staff"
	"salonflow/models"
)

// StaffService manages staff accounts. Provisioning creates the account and
// its default weekly schedule atomically so a bookable staff member always
// has working hours.
type StaffService interface {
	Provision(ctx context.Context, s models.Staff) (*models.Staff, error)
	Authenticate(ctx context.Context, email, password string) (*AuthSession, error)
	Get(ctx context.Context, id string) (*models.Staff, error)
	List(ctx context.Context) ([]models.Staff, error)
	UpdateProfile(ctx context.Context, s models.Staff) (*models.Staff, error)
	Deactivate(ctx context.Context, id string) error
}

// AuthSession is the result of a successful sign-in.
type AuthSession struct {
	Token string       `json:"token"`
	Staff models.Staff `json:"staff"`
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}
