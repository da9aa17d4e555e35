package pubsub

import (
	"context"
	"log/slog"

	"github.com/actions-insider/webhook-ingest/internal/processor"
)

// EventProcessor processes one stored event (e.g. processor.Processor).
type EventProcessor interface {
	Process(ctx context.Context, eventID int64) processor.Result
}

// Consumer processes event jobs. Depends only on the EventProcessor interface.
type Consumer struct {
	proc EventProcessor
	jobs <-chan EventJob
	log  *slog.Logger
}

// NewConsumer returns a consumer that reads jobs from the given channel.
func NewConsumer(p EventProcessor, jobs <-chan EventJob) *Consumer {
	return &Consumer{proc: p, jobs: jobs, log: slog.Default()}
}

// Run starts one worker. Call N times for N workers.
func (c *Consumer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("consumer worker stopping")
			return
		case job, ok := <-c.jobs:
			if !ok {
				c.log.Debug("consumer jobs channel closed")
				return
			}
			result := c.proc.Process(ctx, job.EventID)
			c.log.Debug("event processed", "event_id", job.EventID, "result", result)
		}
	}
}
