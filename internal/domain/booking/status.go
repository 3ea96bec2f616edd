package booking

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// InitialStatus is confirmed: new bookings skip manual review.
func InitialStatus() Status {
	return StatusConfirmed
}

// HoldsSlot reports whether a booking in this status occupies its slot.
func (s Status) HoldsSlot() bool {
	return s != StatusCancelled
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}
