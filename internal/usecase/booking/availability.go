package booking

import (
	"context"
	"errors"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/domain/closeddate"
	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/timezone"
)

type Availability struct {
	Available []string `json:"availableTimes"`
	Booked    []string `json:"bookedTimes"`
	Closed    bool     `json:"isClosed"`
	Reason    string   `json:"reason,omitempty"`
}

type GetAvailability struct {
	repo   domain.Repository
	closed closeddate.Repository
	ref    reference.Repository
	grid   domain.Grid
}

func NewGetAvailability(
	repo domain.Repository,
	closed closeddate.Repository,
	ref reference.Repository,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		closed: closed,
		ref:    ref,
		grid:   domain.DefaultGrid,
	}
}

// Execute returns the raw server view; hiding already-started slots for
// today is left to the caller (see Grid.Upcoming).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID models.BarberID,
	date string,
) (*Availability, error) {

	if _, err := timezone.ParseDate(date); err != nil {
		return nil, invalidDate(date)
	}

	if _, err := uc.ref.GetBarber(ctx, barberID); err != nil {
		if errors.Is(err, reference.ErrNotFound) {
			return nil, unknownBarber()
		}
		return nil, err
	}

	// Closed days report every label as booked.
	r, err := uc.closed.FindCovering(ctx, date)
	if err != nil {
		return nil, err
	}
	if r != nil {
		return &Availability{
			Available: []string{},
			Booked:    uc.grid.All(),
			Closed:    true,
			Reason:    closedReason(r),
		}, nil
	}

	times, err := uc.repo.ListBookedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(times))
	for _, t := range times {
		taken[t] = true
	}

	out := &Availability{Available: []string{}, Booked: []string{}}
	for _, label := range uc.grid.All() {
		switch {
		case taken[label]:
			out.Booked = append(out.Booked, label)
		case uc.grid.IsBreak(label):
		default:
			out.Available = append(out.Available, label)
		}
	}

	return out, nil
}
