package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/models"
)

type Reference struct {
	mu       sync.RWMutex
	barbers  map[models.BarberID]models.Barber
	services map[string]models.Service
	staff    map[string]models.StaffUser
}

func NewReference() *Reference {
	return &Reference{
		barbers:  make(map[models.BarberID]models.Barber),
		services: make(map[string]models.Service),
		staff:    make(map[string]models.StaffUser),
	}
}

func (s *Reference) ListBarbers(_ context.Context) ([]models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Barber
	for _, b := range s.barbers {
		if b.Active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Reference) GetBarber(_ context.Context, id models.BarberID) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.barbers[id]
	if !ok {
		return nil, reference.ErrNotFound
	}
	return &b, nil
}

func (s *Reference) EnsureBarber(_ context.Context, b *models.Barber) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.barbers[b.ID]; ok {
		return false, nil
	}
	s.barbers[b.ID] = *b
	return true, nil
}

func (s *Reference) ListServices(_ context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Service
	for _, sv := range s.services {
		if sv.Active {
			out = append(out, sv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Reference) GetServiceByName(_ context.Context, name string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sv, ok := s.services[name]
	if !ok {
		return nil, reference.ErrNotFound
	}
	return &sv, nil
}

func (s *Reference) EnsureService(_ context.Context, sv *models.Service) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[sv.Name]; ok {
		return false, nil
	}
	s.services[sv.Name] = *sv
	return true, nil
}

func (s *Reference) GetStaff(_ context.Context, username string) (*models.StaffUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.staff[username]
	if !ok {
		return nil, reference.ErrNotFound
	}
	return &u, nil
}

func (s *Reference) EnsureStaff(_ context.Context, u *models.StaffUser) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.staff[u.Username]; ok {
		return false, nil
	}
	s.staff[u.Username] = *u
	return true, nil
}

var _ reference.Repository = (*Reference)(nil)
