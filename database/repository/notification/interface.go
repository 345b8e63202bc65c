package notificationRepo

import (
	"context"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository records dispatched (or attempted) messages.
type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (*models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)

	EnsureIndexes() error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}
