package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hairlogy/barber-booking/internal/db"
	domain "github.com/hairlogy/barber-booking/internal/domain/closeddate"
	"github.com/hairlogy/barber-booking/internal/models"
)

type ClosedDateMongoRepository struct {
	collection *mongo.Collection
}

func NewClosedDateMongoRepository(database *mongo.Database) *ClosedDateMongoRepository {
	return &ClosedDateMongoRepository{collection: database.Collection(db.CollectionClosedDates)}
}

func (r *ClosedDateMongoRepository) Create(ctx context.Context, cr *models.ClosedDateRange) error {
	if _, err := r.collection.InsertOne(ctx, cr); err != nil {
		return fmt.Errorf("create closed dates: %w", err)
	}
	return nil
}

func (r *ClosedDateMongoRepository) find(ctx context.Context, filter bson.M) ([]models.ClosedDateRange, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.ClosedDateRange
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClosedDateMongoRepository) List(ctx context.Context) ([]models.ClosedDateRange, error) {
	out, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list closed dates: %w", err)
	}
	return out, nil
}

func (r *ClosedDateMongoRepository) FindOverlapping(ctx context.Context, start, end string) ([]models.ClosedDateRange, error) {
	out, err := r.find(ctx, bson.M{
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	})
	if err != nil {
		return nil, fmt.Errorf("overlapping closed dates: %w", err)
	}
	return out, nil
}

func (r *ClosedDateMongoRepository) FindCovering(ctx context.Context, date string) (*models.ClosedDateRange, error) {
	var cr models.ClosedDateRange
	err := r.collection.FindOne(ctx,
		bson.M{"start_date": bson.M{"$lte": date}, "end_date": bson.M{"$gte": date}},
		options.FindOne().SetSort(bson.D{{Key: "start_date", Value: 1}}),
	).Decode(&cr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("covering closed dates: %w", err)
	}
	return &cr, nil
}

func (r *ClosedDateMongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete closed dates: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.Repository = (*ClosedDateMongoRepository)(nil)
