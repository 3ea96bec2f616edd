package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/hairlogy/barber-booking/internal/audit"
	"github.com/hairlogy/barber-booking/internal/models"
)

type AuditLogs struct {
	mu   sync.RWMutex
	rows []models.AuditLog
}

func NewAuditLogs() *AuditLogs {
	return &AuditLogs{}
}

func (s *AuditLogs) Insert(_ context.Context, l *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, *l)
	return nil
}

func (s *AuditLogs) List(_ context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match []models.AuditLog
	for _, l := range s.rows {
		if q.Action != "" && l.Action != q.Action {
			continue
		}
		if q.Entity != "" && l.Entity != q.Entity {
			continue
		}
		if q.From != nil && l.CreatedAt.Before(*q.From) {
			continue
		}
		if q.To != nil && l.CreatedAt.After(*q.To) {
			continue
		}
		match = append(match, l)
	}

	sort.SliceStable(match, func(i, j int) bool { return match[i].CreatedAt.After(match[j].CreatedAt) })

	total := int64(len(match))
	if q.Offset >= len(match) {
		return []models.AuditLog{}, total, nil
	}
	match = match[q.Offset:]
	if q.Limit > 0 && len(match) > q.Limit {
		match = match[:q.Limit]
	}
	return match, total, nil
}

var _ audit.Store = (*AuditLogs)(nil)
