package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hairlogy/barber-booking/internal/audit"
	"github.com/hairlogy/barber-booking/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) Insert(ctx context.Context, l *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *AuditGormRepository) List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if q.Action != "" {
		base = base.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		base = base.Where("entity = ?", q.Entity)
	}
	if q.From != nil {
		base = base.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		base = base.Where("created_at <= ?", *q.To)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	var logs []models.AuditLog
	if err := base.
		Order("created_at DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}

	return logs, total, nil
}

var _ audit.Store = (*AuditGormRepository)(nil)
