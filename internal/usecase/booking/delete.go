package booking

import (
	"context"

	"github.com/hairlogy/barber-booking/internal/audit"
	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(repo domain.Repository, audit *audit.Dispatcher) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: audit}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id string, actor string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
	})
	return nil
}
