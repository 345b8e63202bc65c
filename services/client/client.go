package client

import (
	"context"
	"strings"

	clientRepo "salonflow/database/repository/client"
	"salonflow/models"
	"salonflow/services/scheduling"
	"salonflow/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ClientService manages customer accounts.
type ClientService interface {
	Register(ctx context.Context, c models.Client) (*models.Client, error)
	Authenticate(ctx context.Context, email, password string) (*AuthSession, error)
	Get(ctx context.Context, id string) (*models.Client, error)
	UpdateProfile(ctx context.Context, c models.Client) (*models.Client, error)
}

// AuthSession is the result of a successful sign-in.
type AuthSession struct {
	Token  string        `json:"token"`
	Client models.Client `json:"client"`
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

// Register creates a customer account.
func (s *DefaultClientService) Register(ctx context.Context, c models.Client) (*models.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.Name == "" || c.Email == "" {
		return nil, scheduling.NewValidation("name and email are required")
	}
	if len(c.Password) < 8 {
		return nil, scheduling.NewValidation("password must be at least 8 characters")
	}
	if existing, _ := s.Repo.GetByEmail(ctx, c.Email); existing != nil {
		return nil, scheduling.NewValidation("email %s is already registered", c.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c.ID = uuid.New().String()
	c.Password = ""
	c.PasswordHash = string(hash)
	return s.Repo.Create(ctx, c)
}

// Authenticate verifies the credentials and issues a session token.
func (s *DefaultClientService) Authenticate(ctx context.Context, email, password string) (*AuthSession, error) {
	c, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, scheduling.NewUnauthorized("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return nil, scheduling.NewUnauthorized("invalid email or password")
	}

	token, err := utils.GenerateToken(c.ID, utils.RoleClient, utils.SessionTokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetTokenHash(ctx, c.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}
	return &AuthSession{Token: token, Client: *c}, nil
}

// Get returns a client by id.
func (s *DefaultClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, scheduling.NewNotFound("client %s not found", id)
	}
	return c, nil
}

// UpdateProfile updates name and phone.
func (s *DefaultClientService) UpdateProfile(ctx context.Context, c models.Client) (*models.Client, error) {
	current, err := s.Get(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(c.Name); name != "" {
		current.Name = name
	}
	if c.Phone != "" {
		current.Phone = c.Phone
	}
	return s.Repo.Update(ctx, *current)
}
