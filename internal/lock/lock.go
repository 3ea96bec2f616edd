package lock

import (
	"context"
	"sync"
	"time"
)

type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Local serialises keys inside one process. It backs the memory storage
// driver and tests.
type Local struct {
	mu   sync.Mutex
	held map[string]time.Time
}

func NewLocal() *Local {
	return &Local{held: make(map[string]time.Time)}
}

func (l *Local) Lock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if exp, ok := l.held[key]; ok && now.Before(exp) {
		return false, nil
	}
	l.held[key] = now.Add(ttl)
	return true, nil
}

func (l *Local) Unlock(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.held, key)
	l.mu.Unlock()
	return nil
}

// Noop always grants the lock; the store's unique constraint is the only
// guard left.
type Noop struct{}

func (Noop) Lock(context.Context, string, time.Duration) (bool, error) { return true, nil }
func (Noop) Unlock(context.Context, string) error                       { return nil }
