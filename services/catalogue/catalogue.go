package catalogue

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	serviceRepo "salonflow/database/repository/service"
	"salonflow/models"
	"salonflow/services/scheduling"
	"salonflow/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Redis key and lifetime for the cached active-catalogue listing. Every
// catalogue mutation drops the key.
const (
	activeListingKey = "catalogue:active"
	activeListingTTL = 5 * time.Minute
)

// ListingCache holds the serialized active-catalogue listing between
// mutations. *redis.Client satisfies it; nil disables caching.
type ListingCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CatalogueService manages the bookable service catalogue.
type CatalogueService interface {
	Create(ctx context.Context, svc models.Service) (*models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, svc models.Service) (*models.Service, error)
	Retire(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]models.Service, error)
}

// DefaultCatalogueService is the production implementation.
type DefaultCatalogueService struct {
	Repo  serviceRepo.ServiceRepository
	Cache ListingCache
}

// Create adds a service to the catalogue.
func (s *DefaultCatalogueService) Create(ctx context.Context, svc models.Service) (*models.Service, error) {
	if err := validate(svc); err != nil {
		return nil, err
	}
	svc.Active = true
	created, err := s.Repo.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return created, nil
}

// Get returns a service by id.
func (s *DefaultCatalogueService) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, scheduling.NewNotFound("service %s not found", id)
	}
	return svc, nil
}

// Update replaces the mutable fields of a service. Duration changes affect
// only future bookings; existing appointments keep their derived end times.
func (s *DefaultCatalogueService) Update(ctx context.Context, svc models.Service) (*models.Service, error) {
	current, err := s.Get(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	if err := validate(svc); err != nil {
		return nil, err
	}
	current.Name = svc.Name
	current.Description = svc.Description
	current.Duration = svc.Duration
	current.Price = svc.Price
	saved, err := s.Repo.Update(ctx, *current)
	if err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return saved, nil
}

// Retire takes a service off the catalogue without deleting it.
func (s *DefaultCatalogueService) Retire(ctx context.Context, id string) error {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	svc.Active = false
	if _, err := s.Repo.Update(ctx, *svc); err != nil {
		return err
	}
	s.invalidateListing(ctx)
	return nil
}

// ListActive returns the bookable services, served from the listing cache
// when it is warm.
func (s *DefaultCatalogueService) ListActive(ctx context.Context) ([]models.Service, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, activeListingKey).Result(); err == nil {
			var cached []models.Service
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	listing, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if raw, err := json.Marshal(listing); err == nil {
			s.Cache.Set(ctx, activeListingKey, raw, activeListingTTL)
		}
	}
	return listing, nil
}

func (s *DefaultCatalogueService) invalidateListing(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, activeListingKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop the catalogue listing cache", zap.Error(err))
	}
}

func validate(svc models.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return scheduling.NewValidation("service name is required")
	}
	if svc.Duration <= 0 {
		return scheduling.NewValidation("service duration must be positive")
	}
	if svc.Duration%scheduling.SlotGranularityMinutes != 0 {
		return scheduling.NewValidation("service duration must be a multiple of %d minutes", scheduling.SlotGranularityMinutes)
	}
	if svc.Price < 0 {
		return scheduling.NewValidation("service price may not be negative")
	}
	return nil
}
