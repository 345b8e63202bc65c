package staffRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"salonflow/models"
)

// ProvisionWithSchedule inserts the staff record and its default weekly
// schedule inside one Mongo transaction so a half-provisioned staff member
// can never be observed.
func (r *mongoStaffRepo) ProvisionWithSchedule(ctx context.Context, s models.Staff, schedule []models.WorkingHours) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	docs := make([]interface{}, len(schedule))
	for i, wh := range schedule {
		if wh.ID == "" {
			wh.ID = uuid.New().String()
		}
		wh.StaffID = s.ID
		wh.CreatedAt = now
		wh.UpdatedAt = now
		docs[i] = wh
	}

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.coll.InsertOne(sc, s); err != nil {
			return nil, fmt.Errorf("insert staff failed: %w", err)
		}
		if len(docs) > 0 {
			if _, err := r.scheduleColl.InsertMany(sc, docs); err != nil {
				return nil, fmt.Errorf("insert default schedule failed: %w", err)
			}
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
