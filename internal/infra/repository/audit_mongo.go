package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hairlogy/barber-booking/internal/audit"
	"github.com/hairlogy/barber-booking/internal/db"
	"github.com/hairlogy/barber-booking/internal/models"
)

type AuditMongoRepository struct {
	collection *mongo.Collection
}

func NewAuditMongoRepository(database *mongo.Database) *AuditMongoRepository {
	return &AuditMongoRepository{collection: database.Collection(db.CollectionAuditLogs)}
}

func (r *AuditMongoRepository) Insert(ctx context.Context, l *models.AuditLog) error {
	_, err := r.collection.InsertOne(ctx, l)
	return err
}

func (r *AuditMongoRepository) List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	filter := bson.M{}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.Entity != "" {
		filter["entity"] = q.Entity
	}

	created := bson.M{}
	if q.From != nil {
		created["$gte"] = *q.From
	}
	if q.To != nil {
		created["$lte"] = *q.To
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(q.Offset))
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, fmt.Errorf("decode audit logs: %w", err)
	}

	return logs, total, nil
}

var _ audit.Store = (*AuditMongoRepository)(nil)
