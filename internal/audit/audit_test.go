package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/models"
)

type fakeStore struct {
	mu   sync.Mutex
	rows []models.AuditLog
}

func (s *fakeStore) Insert(_ context.Context, l *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, *l)
	return nil
}

func (s *fakeStore) List(context.Context, Query) ([]models.AuditLog, int64, error) {
	return s.rows, int64(len(s.rows)), nil
}

func TestDispatcher_WritesOnClose(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(New(store), zap.NewNop())

	d.Dispatch(Event{
		Actor:    "yasin",
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: "b1",
		Metadata: map[string]string{"status": "cancelled"},
	})
	d.Close()

	require.Len(t, store.rows, 1)
	row := store.rows[0]
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, "yasin", row.Actor)
	assert.JSONEq(t, `{"status":"cancelled"}`, row.Metadata)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(New(&fakeStore{}), zap.NewNop())

	d.Close()
	assert.NotPanics(t, d.Close)
}
