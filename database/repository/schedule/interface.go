package scheduleRepo

import (
	"context"
	"time"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository is the persistence contract for weekly working hours.
type ScheduleRepository interface {
	Create(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error)
	CreateMany(ctx context.Context, records []models.WorkingHours) error
	// GetCurrent selects the record in force for the staff member and weekday
	// on the given date, or nil when none applies.
	GetCurrent(ctx context.Context, staffID string, day time.Weekday, onDate string) (*models.WorkingHours, error)
	Update(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error)
	ListByStaff(ctx context.Context, staffID string) ([]models.WorkingHours, error)

	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoScheduleRepo{
		coll: db.Collection("working_hours"),
	}
}
