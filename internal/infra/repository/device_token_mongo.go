package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hairlogy/barber-booking/internal/db"
	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/ratelimit"
)

type DeviceTokenMongoRepository struct {
	collection *mongo.Collection
}

func NewDeviceTokenMongoRepository(database *mongo.Database) *DeviceTokenMongoRepository {
	return &DeviceTokenMongoRepository{collection: database.Collection(db.CollectionDeviceTokens)}
}

func (r *DeviceTokenMongoRepository) Get(ctx context.Context, token string) (*models.DeviceToken, error) {
	var t models.DeviceToken
	err := r.collection.FindOne(ctx, bson.M{"_id": token}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get device token: %w", err)
	}
	return &t, nil
}

func (r *DeviceTokenMongoRepository) Save(ctx context.Context, t *models.DeviceToken) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": t.Token}, t, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save device token: %w", err)
	}
	return nil
}

var _ ratelimit.Store = (*DeviceTokenMongoRepository)(nil)
