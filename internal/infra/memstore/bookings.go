package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/hairlogy/barber-booking/internal/domain/booking"
	"github.com/hairlogy/barber-booking/internal/models"
)

// Bookings keeps bookings in memory and enforces the same active-slot
// uniqueness as the database indexes.
type Bookings struct {
	mu   sync.RWMutex
	rows map[string]models.Booking
}

func NewBookings() *Bookings {
	return &Bookings{rows: make(map[string]models.Booking)}
}

func (s *Bookings) slotHeldLocked(key domain.SlotKey, exceptID string) bool {
	for id, b := range s.rows {
		if id == exceptID || !domain.Status(b.Status).HoldsSlot() {
			continue
		}
		if domain.KeyOf(&b) == key {
			return true
		}
	}
	return false
}

func (s *Bookings) Create(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.Status(b.Status).HoldsSlot() && s.slotHeldLocked(domain.KeyOf(b), b.ID) {
		return domain.ErrSlotTaken
	}
	s.rows[b.ID] = *b
	return nil
}

func (s *Bookings) IsSlotTaken(_ context.Context, key domain.SlotKey) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.slotHeldLocked(key, ""), nil
}

func (s *Bookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (s *Bookings) List(_ context.Context, f domain.Filter) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.rows))
	for _, b := range s.rows {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.BarberID != nil && b.BarberID != *f.BarberID {
			continue
		}
		if f.Date != "" && b.AppointmentDate != f.Date {
			continue
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate > out[j].AppointmentDate
		}
		return out[i].AppointmentTime > out[j].AppointmentTime
	})
	return out, nil
}

func (s *Bookings) ListBookedTimes(_ context.Context, barberID models.BarberID, date string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, b := range s.rows {
		if b.BarberID == barberID && b.AppointmentDate == date && domain.Status(b.Status).HoldsSlot() {
			out = append(out, b.AppointmentTime)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *Bookings) UpdateStatus(_ context.Context, id string, status domain.Status, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.rows[id]
	if !ok {
		return domain.ErrNotFound
	}

	if status.HoldsSlot() && !domain.Status(b.Status).HoldsSlot() && s.slotHeldLocked(domain.KeyOf(&b), id) {
		return domain.ErrSlotTaken
	}

	b.Status = string(status)
	b.UpdatedAt = now
	s.rows[id] = b
	return nil
}

func (s *Bookings) CompleteIfConfirmed(_ context.Context, id string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.rows[id]
	if !ok || domain.Status(b.Status) != domain.StatusConfirmed {
		return false, nil
	}

	domain.Complete(&b, now)
	s.rows[id] = b
	return true, nil
}

func (s *Bookings) MarkReminderSent(_ context.Context, id string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.rows[id]
	if !ok {
		return domain.ErrNotFound
	}

	domain.MarkReminderSent(&b, now)
	s.rows[id] = b
	return nil
}

func (s *Bookings) ConfirmPending(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, b := range s.rows {
		if domain.Status(b.Status) == domain.StatusPending {
			b.Status = string(domain.StatusConfirmed)
			b.UpdatedAt = now
			s.rows[id] = b
			n++
		}
	}
	return n, nil
}

func (s *Bookings) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *Bookings) ListBefore(_ context.Context, date string, limit int) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for _, b := range s.rows {
		if b.AppointmentDate < date {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Bookings) DeleteByIDs(_ context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, id := range ids {
		if _, ok := s.rows[id]; ok {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

var _ domain.Repository = (*Bookings)(nil)
