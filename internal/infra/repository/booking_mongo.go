package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hairlogy/barber-booking/internal/db"
	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/models"
)

// BookingMongoRepository keeps slot_key on every booking that holds its
// slot; the unique partial index on that field rejects double bookings.
type BookingMongoRepository struct {
	collection *mongo.Collection
}

func NewBookingMongoRepository(database *mongo.Database) *BookingMongoRepository {
	return &BookingMongoRepository{collection: database.Collection(db.CollectionBookings)}
}

func activeFilter(key domain.SlotKey) bson.M {
	return bson.M{
		"barber_id":        key.BarberID,
		"appointment_date": key.Date,
		"appointment_time": key.Time,
		"status":           bson.M{"$ne": string(domain.StatusCancelled)},
	}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

func (r *BookingMongoRepository) Create(ctx context.Context, b *models.Booking) error {
	if domain.Status(b.Status).HoldsSlot() {
		key := domain.KeyOf(b).String()
		b.SlotKey = &key
	}

	_, err := r.collection.InsertOne(ctx, b)
	if isUniqueViolation(err) {
		return domain.ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingMongoRepository) IsSlotTaken(ctx context.Context, key domain.SlotKey) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, activeFilter(key), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("slot lookup: %w", err)
	}
	return n > 0, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingMongoRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *BookingMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Booking
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingMongoRepository) List(ctx context.Context, f domain.Filter) ([]models.Booking, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.BarberID != nil {
		filter["barber_id"] = *f.BarberID
	}
	if f.Date != "" {
		filter["appointment_date"] = f.Date
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "appointment_date", Value: -1},
		{Key: "appointment_time", Value: -1},
	})

	out, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (r *BookingMongoRepository) ListBookedTimes(
	ctx context.Context,
	barberID models.BarberID,
	date string,
) ([]string, error) {

	filter := bson.M{
		"barber_id":        barberID,
		"appointment_date": date,
		"status":           bson.M{"$ne": string(domain.StatusCancelled)},
	}
	opts := options.Find().
		SetProjection(bson.M{"appointment_time": 1}).
		SetSort(bson.D{{Key: "appointment_time", Value: 1}})

	rows, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}

	times := make([]string, 0, len(rows))
	for _, b := range rows {
		times = append(times, b.AppointmentTime)
	}
	return times, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *BookingMongoRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.Status,
	now time.Time,
) error {

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": now}}
	if status.HoldsSlot() {
		update["$set"].(bson.M)["slot_key"] = domain.KeyOf(current).String()
	} else {
		update["$unset"] = bson.M{"slot_key": ""}
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if isUniqueViolation(err) {
		return domain.ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingMongoRepository) CompleteIfConfirmed(ctx context.Context, id string, now time.Time) (bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(domain.StatusConfirmed)},
		bson.M{"$set": bson.M{"status": string(domain.StatusCompleted), "updated_at": now}},
	)
	if err != nil {
		return false, fmt.Errorf("complete booking: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *BookingMongoRepository) MarkReminderSent(ctx context.Context, id string, now time.Time) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"reminder_sent":    true,
			"reminder_sent_at": now,
			"updated_at":       now,
		}},
	)
	if err != nil {
		return fmt.Errorf("mark reminder: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingMongoRepository) ConfirmPending(ctx context.Context, now time.Time) (int, error) {
	res, err := r.collection.UpdateMany(ctx,
		bson.M{"status": string(domain.StatusPending)},
		bson.M{"$set": bson.M{"status": string(domain.StatusConfirmed), "updated_at": now}},
	)
	if err != nil {
		return 0, fmt.Errorf("confirm pending: %w", err)
	}
	return int(res.ModifiedCount), nil
}

// --------------------------------------------------
// Removal
// --------------------------------------------------

func (r *BookingMongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingMongoRepository) ListBefore(ctx context.Context, date string, limit int) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	out, err := r.find(ctx, bson.M{"appointment_date": bson.M{"$lt": date}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list before: %w", err)
	}
	return out, nil
}

func (r *BookingMongoRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("delete batch: %w", err)
	}
	return int(res.DeletedCount), nil
}

var _ domain.Repository = (*BookingMongoRepository)(nil)
