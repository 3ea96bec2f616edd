package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hairlogy/barber-booking/internal/timezone"
)

// Scheduler runs the retention sweep once a day and the passive completion
// sweep on a fixed interval. Failures are logged and counted; the next tick
// tries again.
type Scheduler struct {
	c             *Container
	retentionDays int
	retentionHour int
	sweepEvery    time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewScheduler(c *Container, retentionDays, retentionHour int, sweepEvery time.Duration) *Scheduler {
	return &Scheduler{
		c:             c,
		retentionDays: retentionDays,
		retentionHour: retentionHour,
		sweepEvery:    sweepEvery,
		stopChan:      make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.c.Log.Info("starting background scheduler",
		zap.Int("retention_days", s.retentionDays),
		zap.Int("retention_hour", s.retentionHour),
		zap.Duration("completion_sweep", s.sweepEvery),
	)

	s.wg.Add(2)
	go s.runRetentionTask(ctx)
	go s.runCompletionTask(ctx)
}

// Stop signals both tasks and waits for them to return.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.c.Log.Info("stopping background scheduler")
		close(s.stopChan)
	})
	s.wg.Wait()
}

// --------------------------------------------------
// Retention
// --------------------------------------------------

func (s *Scheduler) runRetentionTask(ctx context.Context) {
	defer s.wg.Done()

	s.retention(ctx)

	for {
		wait := NextDailyRun(s.c.Clock(), s.retentionHour).Sub(s.c.Clock())
		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
			s.retention(ctx)
		case <-s.stopChan:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

func (s *Scheduler) retention(ctx context.Context) {
	threshold := RetentionThreshold(s.c.Clock(), s.retentionDays)

	if _, err := s.c.RetentionSweep.Execute(ctx, threshold); err != nil {
		s.c.Log.Error("retention sweep failed", zap.String("threshold", threshold), zap.Error(err))
		s.c.Metrics.BackgroundErrors.WithLabelValues("retention").Inc()
	}
}

// --------------------------------------------------
// Passive completion
// --------------------------------------------------

func (s *Scheduler) runCompletionTask(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.c.CompletePast.Execute(ctx); err != nil {
				s.c.Log.Error("completion sweep failed", zap.Error(err))
				s.c.Metrics.BackgroundErrors.WithLabelValues("completion").Inc()
			}
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// RetentionThreshold is the first appointment date that survives a sweep
// run at now: bookings dated strictly before it are removed.
func RetentionThreshold(now time.Time, days int) string {
	return timezone.FormatDate(now.AddDate(0, 0, -days))
}

// NextDailyRun returns the next time at hour:00 in now's location that is
// strictly after now.
func NextDailyRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
