package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonflow/models"
)

// EnsureIndexes creates the indexes backing the appointment query patterns.
// The partial unique index on (staffId, date) is the storage-level guard
// behind the no-double-booking invariant: two grid-aligned bookings for the
// same staff member can never share a start instant, so the validate-then-
// insert race between concurrent requests cannot commit twice for the same
// slot even if both passed validation.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "staffId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("staff_start_blocking_unique").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{models.AppointmentPending, models.AppointmentConfirmed}},
				}),
		},
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "date", Value: 1}, {Key: "endTime", Value: 1}},
			Options: options.Index().SetName("staff_window_idx"),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("client_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
