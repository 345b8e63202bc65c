package appointmentRepo

import (
	"context"
	"time"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository is the persistence contract for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt models.Appointment) (*models.Appointment, error)

	// ListBlockingByStaffAndDate returns the staff member's appointments on a
	// calendar date whose status still occupies their time.
	ListBlockingByStaffAndDate(ctx context.Context, staffID, date string) ([]models.Appointment, error)
	// ListBlockingByStaffAndDateRange covers an inclusive date range.
	ListBlockingByStaffAndDateRange(ctx context.Context, staffID, startDate, endDate string) ([]models.Appointment, error)
	// FindOverlapping returns blocking appointments whose [Date, EndTime)
	// crosses the given window, excluding excludeID when non-empty.
	FindOverlapping(ctx context.Context, staffID string, start, end time.Time, excludeID string) ([]models.Appointment, error)
	// CountBlockingOnDate supports the working-day toggle guard.
	CountBlockingOnDate(ctx context.Context, staffID, date string) (int64, error)

	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
	MarkConfirmationSent(ctx context.Context, id string) error

	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
