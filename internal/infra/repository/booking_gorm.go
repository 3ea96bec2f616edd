package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/models"
)

const activeSlot = "barber_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> 'cancelled'"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

// Create re-checks the slot under a row lock and inserts in one
// transaction. The partial unique index ux_bookings_active_slot rejects
// whatever slips past the check.
func (r *BookingGormRepository) Create(ctx context.Context, b *models.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(activeSlot, b.BarberID, b.AppointmentDate, b.AppointmentTime).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			return domain.ErrSlotTaken
		}

		return tx.Create(b).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrSlotTaken), isUniqueViolation(err):
		return domain.ErrSlotTaken
	}
	return fmt.Errorf("create booking: %w", err)
}

func (r *BookingGormRepository) IsSlotTaken(ctx context.Context, key domain.SlotKey) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(activeSlot, key.BarberID, key.Date, key.Time).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("slot lookup: %w", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *BookingGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.Date != "" {
		q = q.Where("appointment_date = ?", f.Date)
	}

	var out []models.Booking
	if err := q.
		Order("appointment_date DESC").
		Order("appointment_time DESC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID models.BarberID,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("barber_id = ? AND appointment_date = ? AND status <> 'cancelled'", barberID, date).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	return times, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.Status,
	now time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": now})

	if isUniqueViolation(res.Error) {
		return domain.ErrSlotTaken
	}
	if res.Error != nil {
		return fmt.Errorf("update status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) CompleteIfConfirmed(ctx context.Context, id string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, string(domain.StatusConfirmed)).
		Updates(map[string]any{"status": string(domain.StatusCompleted), "updated_at": now})
	if res.Error != nil {
		return false, fmt.Errorf("complete booking: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *BookingGormRepository) MarkReminderSent(ctx context.Context, id string, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reminder_sent":    true,
			"reminder_sent_at": now,
			"updated_at":       now,
		})
	if res.Error != nil {
		return fmt.Errorf("mark reminder: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) ConfirmPending(ctx context.Context, now time.Time) (int, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", string(domain.StatusPending)).
		Updates(map[string]any{"status": string(domain.StatusConfirmed), "updated_at": now})
	if res.Error != nil {
		return 0, fmt.Errorf("confirm pending: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

// --------------------------------------------------
// Removal
// --------------------------------------------------

func (r *BookingGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) ListBefore(ctx context.Context, date string, limit int) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("appointment_date < ?", date).
		Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []models.Booking
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list before: %w", err)
	}
	return out, nil
}

func (r *BookingGormRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Booking{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete batch: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

var _ domain.Repository = (*BookingGormRepository)(nil)
