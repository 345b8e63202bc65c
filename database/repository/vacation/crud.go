package vacationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonflow/models"
)

func (r *mongoVacationRepo) Create(ctx context.Context, v models.Vacation) (*models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *mongoVacationRepo) GetByID(ctx context.Context, id string) (*models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var v models.Vacation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *mongoVacationRepo) Update(ctx context.Context, v models.Vacation) (*models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	v.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": v.ID}, v)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &v, nil
}

func (r *mongoVacationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoVacationRepo) ListByStaff(ctx context.Context, staffID string) ([]models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"staffId": staffID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vacations []models.Vacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, err
	}
	return vacations, nil
}

func (r *mongoVacationRepo) FindLiveOverlapping(ctx context.Context, staffID, startDate, endDate, excludeID string) ([]models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staffId":   staffID,
		"status":    bson.M{"$in": bson.A{models.VacationPending, models.VacationApproved}},
		"startDate": bson.M{"$lte": endDate},
		"endDate":   bson.M{"$gte": startDate},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vacations []models.Vacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, err
	}
	return vacations, nil
}

func (r *mongoVacationRepo) FindApprovedCovering(ctx context.Context, staffID, date string) ([]models.Vacation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staffId":   staffID,
		"status":    models.VacationApproved,
		"startDate": bson.M{"$lte": date},
		"endDate":   bson.M{"$gte": date},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vacations []models.Vacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, err
	}
	return vacations, nil
}

// EnsureIndexes creates the staff date-range lookup index.
func (r *mongoVacationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}},
			Options: options.Index().SetName("staff_range_idx"),
		},
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("staff_status_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create vacation indexes: %w", err)
	}
	return nil
}
