package staffRepo

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

func (r *mongoStaffRepo) Create(ctx context.Context, s models.Staff) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoStaffRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *mongoStaffRepo) findOne(ctx context.Context, filter bson.M) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Staff
	err := r.coll.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStaffRepo) Update(ctx context.Context, s models.Staff) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": s.ID}, s)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (r *mongoStaffRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}})
	return err
}

func (r *mongoStaffRepo) List(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// EnsureIndexes creates the staff lookup indexes.
func (r *mongoStaffRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
		{
			Keys:    bson.D{{Key: "tokenHash", Value: 1}},
			Options: options.Index().SetName("token_hash_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}
	return nil
}
