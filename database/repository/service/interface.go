package serviceRepo

import (
	"context"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository is the persistence contract for the service catalogue.
type ServiceRepository interface {
	Create(ctx context.Context, svc models.Service) (*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, svc models.Service) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]models.Service, error)

	EnsureIndexes() error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
