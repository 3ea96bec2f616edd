package booking

import (
	"errors"
	"fmt"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/httperr"
)

var (
	errSlotTaken = httperr.Conflict("slot_taken", "Bu saat dilimi zaten dolu. Lütfen başka bir saat seçin.", nil)
	errBreakTime = httperr.Validation("break_time", "Bu saat yemek molası, randevu alınamaz.")
	errNotFound  = httperr.NotFound("booking_not_found", "Booking not found")
)

func invalidDate(date string) error {
	return httperr.Validation("invalid_date", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
}

func unknownBarber() error {
	return httperr.Validation("unknown_barber", "unknown barber")
}

// translate maps repository sentinels onto business errors.
func translate(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errNotFound
	case errors.Is(err, domain.ErrSlotTaken):
		return errSlotTaken
	}
	return err
}

func invalidStatus() error {
	return httperr.Validation("invalid_status", "Invalid status")
}
