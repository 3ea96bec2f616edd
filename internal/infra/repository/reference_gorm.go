package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/models"
)

type ReferenceGormRepository struct {
	db *gorm.DB
}

func NewReferenceGormRepository(db *gorm.DB) *ReferenceGormRepository {
	return &ReferenceGormRepository{db: db}
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("get %s: %w", what, err)
}

// ensure inserts v unless a row with the same key already exists.
func (r *ReferenceGormRepository) ensure(ctx context.Context, v any) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(v)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *ReferenceGormRepository) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	var out []models.Barber
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}
	return out, nil
}

func (r *ReferenceGormRepository) GetBarber(ctx context.Context, id models.BarberID) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, notFound(err, "barber")
	}
	return &b, nil
}

func (r *ReferenceGormRepository) EnsureBarber(ctx context.Context, b *models.Barber) (bool, error) {
	return r.ensure(ctx, b)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *ReferenceGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (r *ReferenceGormRepository) GetServiceByName(ctx context.Context, name string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error; err != nil {
		return nil, notFound(err, "service")
	}
	return &s, nil
}

func (r *ReferenceGormRepository) EnsureService(ctx context.Context, s *models.Service) (bool, error) {
	return r.ensure(ctx, s)
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *ReferenceGormRepository) GetStaff(ctx context.Context, username string) (*models.StaffUser, error) {
	var u models.StaffUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err, "staff")
	}
	return &u, nil
}

func (r *ReferenceGormRepository) EnsureStaff(ctx context.Context, u *models.StaffUser) (bool, error) {
	return r.ensure(ctx, u)
}

var _ domain.Repository = (*ReferenceGormRepository)(nil)
