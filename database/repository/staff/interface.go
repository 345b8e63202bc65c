package staffRepo

import (
	"context"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository is the persistence contract for staff members.
type StaffRepository interface {
	Create(ctx context.Context, s models.Staff) (*models.Staff, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Staff, error)
	Update(ctx context.Context, s models.Staff) (*models.Staff, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	List(ctx context.Context) ([]models.Staff, error)

	// ProvisionWithSchedule inserts the staff record together with its
	// default weekly schedule in a single multi-document transaction. Either
	// everything commits or nothing does.
	ProvisionWithSchedule(ctx context.Context, s models.Staff, schedule []models.WorkingHours) (*models.Staff, error)

	EnsureIndexes() error
}

type mongoStaffRepo struct {
	coll         *mongo.Collection
	scheduleColl *mongo.Collection
}

// NewMongoStaffRepo constructs a MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoStaffRepo{
		coll:         db.Collection("staff"),
		scheduleColl: db.Collection("working_hours"),
	}
}
