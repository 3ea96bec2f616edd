package booking

import (
	"context"
	"time"

	"github.com/hairlogy/barber-booking/internal/models"
)

type Filter struct {
	Status   string
	BarberID *models.BarberID
	Date     string
}

type Repository interface {
	// -------- Create / conflict --------

	// Create persists b. It returns ErrSlotTaken when another non-cancelled
	// booking already holds the same barber, date and time.
	Create(ctx context.Context, b *models.Booking) error

	IsSlotTaken(ctx context.Context, key SlotKey) (bool, error)

	// -------- Reads --------
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, f Filter) ([]models.Booking, error)

	// ListBookedTimes returns the time labels of non-cancelled bookings
	// for barber on date.
	ListBookedTimes(ctx context.Context, barberID models.BarberID, date string) ([]string, error)

	// -------- State change --------
	UpdateStatus(ctx context.Context, id string, status Status, now time.Time) error

	// CompleteIfConfirmed promotes the booking only while it is still
	// confirmed. It reports whether a row changed.
	CompleteIfConfirmed(ctx context.Context, id string, now time.Time) (bool, error)

	MarkReminderSent(ctx context.Context, id string, now time.Time) error

	// ConfirmPending moves every pending booking to confirmed.
	ConfirmPending(ctx context.Context, now time.Time) (int, error)

	// -------- Removal --------
	Delete(ctx context.Context, id string) error
	ListBefore(ctx context.Context, date string, limit int) ([]models.Booking, error)
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}
