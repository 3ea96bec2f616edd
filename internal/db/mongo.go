package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionBookings     = "bookings"
	CollectionClosedDates  = "closed_date_ranges"
	CollectionDeviceTokens = "device_tokens"
	CollectionBarbers      = "barbers"
	CollectionServices     = "services"
	CollectionStaff        = "staff_users"
	CollectionAuditLogs    = "audit_logs"
)

// NewMongo connects, pings and returns the named database.
func NewMongo(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(name), nil
}

// EnsureMongoIndexes creates the indexes the repositories rely on.
// slot_key is only present while a booking holds its slot, so the partial
// unique index enforces one active booking per barber, date and time.
func EnsureMongoIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionBookings: {
			{
				Keys: bson.D{{Key: "slot_key", Value: 1}},
				Options: options.Index().
					SetName("ux_bookings_active_slot").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"slot_key": bson.M{"$exists": true}}),
			},
			{
				Keys: bson.D{
					{Key: "barber_id", Value: 1},
					{Key: "appointment_date", Value: 1},
				},
			},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		CollectionClosedDates: {
			{Keys: bson.D{{Key: "start_date", Value: 1}, {Key: "end_date", Value: 1}}},
		},
		CollectionServices: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionAuditLogs: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "action", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := database.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}
