package clientRepo

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

func (r *mongoClientRepo) Create(ctx context.Context, c models.Client) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoClientRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Client, error) {
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *mongoClientRepo) findOne(ctx context.Context, filter bson.M) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Client
	err := r.coll.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, c models.Client) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": c.ID}, c)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (r *mongoClientRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}})
	return err
}

// EnsureIndexes creates the client lookup indexes.
func (r *mongoClientRepo) EnsureIndexes() error {
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
		return fmt.Errorf("failed to create client indexes: %w", err)
	}
	return nil
}
