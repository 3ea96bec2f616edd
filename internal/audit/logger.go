package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hairlogy/barber-booking/internal/models"
)

type Query struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

type Store interface {
	Insert(ctx context.Context, l *models.AuditLog) error
	// List is newest first.
	List(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store   Store
	now     func() time.Time
	timeout time.Duration
}

func New(store Store) *Logger {
	return &Logger{store: store, now: time.Now, timeout: 5 * time.Second}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		Actor:     ev.Actor,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: l.now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	return l.store.Insert(ctx, &entry)
}
