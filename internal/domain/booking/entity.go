package booking

import (
	"fmt"
	"time"

	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/timezone"
)

// SlotKey is the uniqueness key of a booking among non-cancelled ones.
type SlotKey struct {
	BarberID models.BarberID
	Date     string
	Time     string
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%d:%s:%s", k.BarberID, k.Date, k.Time)
}

func KeyOf(b *models.Booking) SlotKey {
	return SlotKey{
		BarberID: b.BarberID,
		Date:     b.AppointmentDate,
		Time:     b.AppointmentTime,
	}
}

// StartsAt resolves the appointment's date and time label in loc.
func StartsAt(b *models.Booking, loc *time.Location) (time.Time, error) {
	return timezone.ParseDateTimeIn(b.AppointmentDate, b.AppointmentTime, loc)
}

// ShouldAutoComplete reports whether a confirmed booking's start is
// strictly before now.
func ShouldAutoComplete(b *models.Booking, now time.Time) bool {
	if Status(b.Status) != StatusConfirmed {
		return false
	}

	start, err := StartsAt(b, now.Location())
	if err != nil {
		return false
	}
	return start.Before(now)
}

// ===============================
// Domain Actions
// ===============================

func Complete(b *models.Booking, now time.Time) {
	b.Status = string(StatusCompleted)
	b.UpdatedAt = now
}

func MarkReminderSent(b *models.Booking, now time.Time) {
	b.ReminderSent = true
	b.ReminderSentAt = &now
	b.UpdatedAt = now
}
