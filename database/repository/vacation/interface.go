package vacationRepo

import (
	"context"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// VacationRepository is the persistence contract for vacation records.
type VacationRepository interface {
	Create(ctx context.Context, v models.Vacation) (*models.Vacation, error)
	GetByID(ctx context.Context, id string) (*models.Vacation, error)
	Update(ctx context.Context, v models.Vacation) (*models.Vacation, error)
	Delete(ctx context.Context, id string) error

	ListByStaff(ctx context.Context, staffID string) ([]models.Vacation, error)
	// FindLiveOverlapping returns pending or approved vacations whose
	// inclusive date range intersects [startDate, endDate], excluding
	// excludeID when non-empty.
	FindLiveOverlapping(ctx context.Context, staffID, startDate, endDate, excludeID string) ([]models.Vacation, error)
	// FindApprovedCovering returns approved vacations covering one date.
	FindApprovedCovering(ctx context.Context, staffID, date string) ([]models.Vacation, error)

	EnsureIndexes() error
}

type mongoVacationRepo struct {
	coll *mongo.Collection
}

// NewMongoVacationRepo constructs a MongoDB VacationRepository.
func NewMongoVacationRepo() VacationRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoVacationRepo{
		coll: db.Collection("vacations"),
	}
}
