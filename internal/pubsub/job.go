package pubsub

import "github.com/actions-insider/webhook-ingest/internal/metrics"

// EventJob is a unit of work for the consumer: process this stored webhook event.
type EventJob struct {
	EventID int64
}

// TryEnqueue sends job without blocking. It reports false when the channel is full; the sweeper
// picks such events up later.
func TryEnqueue(jobs chan<- EventJob, job EventJob) bool {
	select {
	case jobs <- job:
		return true
	default:
		metrics.QueueDropped.Inc()
		return false
	}
}
