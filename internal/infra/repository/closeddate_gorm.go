package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/hairlogy/barber-booking/internal/domain/closeddate"
	"github.com/hairlogy/barber-booking/internal/models"
)

type ClosedDateGormRepository struct {
	db *gorm.DB
}

func NewClosedDateGormRepository(db *gorm.DB) *ClosedDateGormRepository {
	return &ClosedDateGormRepository{db: db}
}

func (r *ClosedDateGormRepository) Create(ctx context.Context, cr *models.ClosedDateRange) error {
	if err := r.db.WithContext(ctx).Create(cr).Error; err != nil {
		return fmt.Errorf("create closed dates: %w", err)
	}
	return nil
}

func (r *ClosedDateGormRepository) List(ctx context.Context) ([]models.ClosedDateRange, error) {
	var out []models.ClosedDateRange
	if err := r.db.WithContext(ctx).Order("start_date ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list closed dates: %w", err)
	}
	return out, nil
}

func (r *ClosedDateGormRepository) FindOverlapping(ctx context.Context, start, end string) ([]models.ClosedDateRange, error) {
	var out []models.ClosedDateRange
	if err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("overlapping closed dates: %w", err)
	}
	return out, nil
}

func (r *ClosedDateGormRepository) FindCovering(ctx context.Context, date string) (*models.ClosedDateRange, error) {
	var cr models.ClosedDateRange
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Order("start_date ASC").
		First(&cr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("covering closed dates: %w", err)
	}
	return &cr, nil
}

func (r *ClosedDateGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ClosedDateRange{})
	if res.Error != nil {
		return fmt.Errorf("delete closed dates: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.Repository = (*ClosedDateGormRepository)(nil)
