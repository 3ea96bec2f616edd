package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/hairlogy/barber-booking/internal/domain/closeddate"
	"github.com/hairlogy/barber-booking/internal/models"
)

type ClosedDates struct {
	mu   sync.RWMutex
	rows map[string]models.ClosedDateRange
}

func NewClosedDates() *ClosedDates {
	return &ClosedDates{rows: make(map[string]models.ClosedDateRange)}
}

func (s *ClosedDates) Create(_ context.Context, r *models.ClosedDateRange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[r.ID] = *r
	return nil
}

func (s *ClosedDates) List(_ context.Context) ([]models.ClosedDateRange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ClosedDateRange, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (s *ClosedDates) FindOverlapping(ctx context.Context, start, end string) ([]models.ClosedDateRange, error) {
	all, _ := s.List(ctx)

	var out []models.ClosedDateRange
	for _, r := range all {
		if closeddate.Overlaps(start, end, r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ClosedDates) FindCovering(ctx context.Context, date string) (*models.ClosedDateRange, error) {
	all, _ := s.List(ctx)

	for _, r := range all {
		if closeddate.Covers(r, date) {
			return &r, nil
		}
	}
	return nil, nil
}

func (s *ClosedDates) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return closeddate.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

var _ closeddate.Repository = (*ClosedDates)(nil)
