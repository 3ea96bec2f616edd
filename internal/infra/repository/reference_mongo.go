package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hairlogy/barber-booking/internal/db"
	domain "github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/models"
)

type ReferenceMongoRepository struct {
	barbers  *mongo.Collection
	services *mongo.Collection
	staff    *mongo.Collection
}

func NewReferenceMongoRepository(database *mongo.Database) *ReferenceMongoRepository {
	return &ReferenceMongoRepository{
		barbers:  database.Collection(db.CollectionBarbers),
		services: database.Collection(db.CollectionServices),
		staff:    database.Collection(db.CollectionStaff),
	}
}

// insertMissing writes doc only when filter matches nothing.
func insertMissing(ctx context.Context, c *mongo.Collection, filter bson.M, doc any) (bool, error) {
	res, err := c.UpdateOne(ctx, filter, bson.M{"$setOnInsert": doc}, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func findOne(ctx context.Context, c *mongo.Collection, filter bson.M, out any, what string) error {
	err := c.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", what, err)
	}
	return nil
}

func findActive[T any](ctx context.Context, c *mongo.Collection) ([]T, error) {
	cursor, err := c.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *ReferenceMongoRepository) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	out, err := findActive[models.Barber](ctx, r.barbers)
	if err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}
	return out, nil
}

func (r *ReferenceMongoRepository) GetBarber(ctx context.Context, id models.BarberID) (*models.Barber, error) {
	var b models.Barber
	if err := findOne(ctx, r.barbers, bson.M{"_id": id}, &b, "barber"); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ReferenceMongoRepository) EnsureBarber(ctx context.Context, b *models.Barber) (bool, error) {
	return insertMissing(ctx, r.barbers, bson.M{"_id": b.ID}, b)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *ReferenceMongoRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	out, err := findActive[models.Service](ctx, r.services)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (r *ReferenceMongoRepository) GetServiceByName(ctx context.Context, name string) (*models.Service, error) {
	var s models.Service
	if err := findOne(ctx, r.services, bson.M{"name": name}, &s, "service"); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ReferenceMongoRepository) EnsureService(ctx context.Context, s *models.Service) (bool, error) {
	return insertMissing(ctx, r.services, bson.M{"name": s.Name}, s)
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *ReferenceMongoRepository) GetStaff(ctx context.Context, username string) (*models.StaffUser, error) {
	var u models.StaffUser
	if err := findOne(ctx, r.staff, bson.M{"_id": username}, &u, "staff"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *ReferenceMongoRepository) EnsureStaff(ctx context.Context, u *models.StaffUser) (bool, error) {
	return insertMissing(ctx, r.staff, bson.M{"_id": u.Username}, u)
}

var _ domain.Repository = (*ReferenceMongoRepository)(nil)
