package clientRepo

import (
	"context"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository is the persistence contract for client accounts.
type ClientRepository interface {
	Create(ctx context.Context, c models.Client) (*models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Client, error)
	Update(ctx context.Context, c models.Client) (*models.Client, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error

	EnsureIndexes() error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
