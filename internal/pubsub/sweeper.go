package pubsub

import (
	"context"
	"log/slog"
	"time"

	"github.com/actions-insider/webhook-ingest/internal/store"
)

// Sweeper periodically re-enqueues events that were never processed: failed ones and ones
// dropped because the channel was full.
type Sweeper struct {
	store    store.Store
	jobs     chan<- EventJob
	interval time.Duration
	grace    time.Duration
	limit    int
	log      *slog.Logger
	now      func() time.Time
}

// NewSweeper returns a sweeper that sends jobs to the given channel every interval.
// Events younger than grace are left to the live path.
func NewSweeper(s store.Store, jobs chan<- EventJob, interval, grace time.Duration, limit int) *Sweeper {
	return &Sweeper{
		store:    s,
		jobs:     jobs,
		interval: interval,
		grace:    grace,
		limit:    limit,
		log:      slog.Default(),
		now:      time.Now,
	}
}

// Run sweeps until ctx is cancelled. Uses the bounded channel for backpressure.
func (s *Sweeper) Run(ctx context.Context) {
	s.log.Info("sweeper running", "interval", s.interval, "grace", s.grace, "limit", s.limit)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("sweeper stopping")
			return
		case <-time.After(s.interval):
		}
		if !s.sweep(ctx) {
			s.log.Info("sweeper stopping")
			return
		}
	}
}

// sweep enqueues one batch. It returns false when ctx was cancelled mid-batch.
func (s *Sweeper) sweep(ctx context.Context) bool {
	ids, err := s.store.ListUnprocessedEvents(ctx, s.now().Add(-s.grace), s.limit)
	if err != nil {
		s.log.Warn("list unprocessed events", "err", err)
		return true
	}
	if len(ids) > 0 {
		s.log.Info("unprocessed events found", "count", len(ids))
	}
	for _, id := range ids {
		select {
		case s.jobs <- EventJob{EventID: id}:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
