package memstore

import (
	"context"
	"sync"

	"github.com/hairlogy/barber-booking/internal/models"
	"github.com/hairlogy/barber-booking/internal/ratelimit"
)

type DeviceTokens struct {
	mu   sync.Mutex
	rows map[string]models.DeviceToken
}

func NewDeviceTokens() *DeviceTokens {
	return &DeviceTokens{rows: make(map[string]models.DeviceToken)}
}

func (s *DeviceTokens) Get(_ context.Context, token string) (*models.DeviceToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.rows[token]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *DeviceTokens) Save(_ context.Context, t *models.DeviceToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[t.Token] = *t
	return nil
}

var _ ratelimit.Store = (*DeviceTokens)(nil)
