package scheduleRepo

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

func (r *mongoScheduleRepo) Create(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if wh.ID == "" {
		wh.ID = uuid.New().String()
	}
	now := time.Now()
	wh.CreatedAt = now
	wh.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, wh); err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *mongoScheduleRepo) CreateMany(ctx context.Context, records []models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(records))
	for i, wh := range records {
		if wh.ID == "" {
			wh.ID = uuid.New().String()
		}
		wh.CreatedAt = now
		wh.UpdatedAt = now
		docs[i] = wh
	}
	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// GetCurrent fetches the record whose effectivity covers onDate. At most one
// non-superseded record exists per (staff, weekday); superseded records carry
// an inclusive end date.
func (r *mongoScheduleRepo) GetCurrent(ctx context.Context, staffID string, day time.Weekday, onDate string) (*models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staffId":       staffID,
		"dayOfWeek":     day,
		"effectiveFrom": bson.M{"$lte": onDate},
		"$or": bson.A{
			bson.M{"effectivity.superseded": false},
			bson.M{"effectivity.until": bson.M{"$gte": onDate}},
		},
	}
	// Prefer the most recently effective record when history exists.
	opts := options.FindOne().SetSort(bson.D{{Key: "effectiveFrom", Value: -1}})

	var wh models.WorkingHours
	err := r.coll.FindOne(ctx, filter, opts).Decode(&wh)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *mongoScheduleRepo) Update(ctx context.Context, wh models.WorkingHours) (*models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	wh.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": wh.ID}, wh)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &wh, nil
}

func (r *mongoScheduleRepo) ListByStaff(ctx context.Context, staffID string) ([]models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"staffId": staffID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.WorkingHours
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureIndexes creates the (staffId, dayOfWeek) lookup index and the partial
// unique index enforcing a single current record per staff and weekday.
func (r *mongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "staffId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("staff_day_current_unique").
				SetPartialFilterExpression(bson.M{"effectivity.superseded": false}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create working hours indexes: %w", err)
	}
	return nil
}
