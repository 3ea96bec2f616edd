package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/ratelimit"
)

type DeviceTokenGormRepository struct {
	db *gorm.DB
}

func NewDeviceTokenGormRepository(db *gorm.DB) *DeviceTokenGormRepository {
	return &DeviceTokenGormRepository{db: db}
}

func (r *DeviceTokenGormRepository) Get(ctx context.Context, token string) (*models.DeviceToken, error) {
	var t models.DeviceToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get device token: %w", err)
	}
	return &t, nil
}

// Save writes the whole record, inserting it on first sight.
func (r *DeviceTokenGormRepository) Save(ctx context.Context, t *models.DeviceToken) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"booking_count", "created_at", "updated_at"}),
		}).
		Create(t).Error
	if err != nil {
		return fmt.Errorf("save device token: %w", err)
	}
	return nil
}

var _ ratelimit.Store = (*DeviceTokenGormRepository)(nil)
