package replay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/actions-insider/webhook-ingest/internal/store"
)

// DefaultSchedule runs the replay at minute 46 of every hour.
const DefaultSchedule = "46 * * * *"

// Scheduler periodically replays every organization flagged for API fetching.
// Each organization gets its own Driver and a hard time limit.
type Scheduler struct {
	store     store.Store
	newDriver func() (*Driver, error)
	schedule  string
	lookback  time.Duration
	timeLimit time.Duration
	log       *slog.Logger
	now       func() time.Time
}

func NewScheduler(s store.Store, newDriver func() (*Driver, error), schedule string, lookback, timeLimit time.Duration) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Scheduler{
		store:     s,
		newDriver: newDriver,
		schedule:  schedule,
		lookback:  lookback,
		timeLimit: timeLimit,
		log:       slog.Default(),
		now:       time.Now,
	}
}

// Run registers PushAll on the cron schedule and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(s.schedule, func() {
		if err := s.PushAll(ctx, s.lookback); err != nil {
			s.log.Error("replay", "err", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule replay %q: %w", s.schedule, err)
	}
	c.Start()
	s.log.Info("replay scheduler started", "schedule", s.schedule, "lookback", s.lookback, "time_limit", s.timeLimit)
	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Info("replay scheduler stopped")
	return nil
}

// PushAll replays runs created within lookback for every flagged organization, concurrently.
// An organization that fails or runs out of time does not affect the others; work already
// delivered stays committed.
func (s *Scheduler) PushAll(ctx context.Context, lookback time.Duration) error {
	owners, err := s.store.ListFetchOwners(ctx)
	if err != nil {
		return fmt.Errorf("list replay organizations: %w", err)
	}
	if len(owners) == 0 {
		s.log.Warn("no organizations flagged for replay")
		return nil
	}
	since := s.now().Add(-lookback)
	s.log.Info("replay started", "organizations", len(owners), "since", since)

	var g errgroup.Group
	for _, owner := range owners {
		owner := owner
		g.Go(func() error {
			orgCtx, cancel := context.WithTimeout(ctx, s.timeLimit)
			defer cancel()
			d, err := s.newDriver()
			if err != nil {
				return fmt.Errorf("replay %s: %w", owner.Login, err)
			}
			if _, err := d.ProcessOrganization(orgCtx, owner.Login, since); err != nil {
				s.log.Error("replay organization", "org", owner.Login, "err", err)
				return fmt.Errorf("replay %s: %w", owner.Login, err)
			}
			return nil
		})
	}
	return g.Wait()
}
