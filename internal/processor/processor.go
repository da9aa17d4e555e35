package processor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	ghwebhooks "github.com/go-playground/webhooks/v6/github"

	"github.com/actions-insider/webhook-ingest/internal/metrics"
	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

// Result is the outcome of processing one stored event.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
	ResultNoop    Result = "noop"
)

// Processor drives stored webhook events through classification and reconciliation.
// processed_at is stamped only on success; failed events stay eligible for the retry sweep.
type Processor struct {
	store   store.Store
	handler webhook.Handler
	log     *slog.Logger
	now     func() time.Time
}

func NewProcessor(s store.Store, h webhook.Handler) *Processor {
	return &Processor{store: s, handler: h, log: slog.Default(), now: time.Now}
}

// Process handles one event by id. Errors are logged and reported as ResultFailure.
func (p *Processor) Process(ctx context.Context, eventID int64) Result {
	ev, err := p.store.GetWebhookEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.log.Info("event no longer exists", "event_id", eventID)
			return ResultNoop
		}
		p.log.Error("load event", "event_id", eventID, "err", err)
		return ResultFailure
	}

	start := time.Now()
	result := p.process(ctx, ev)
	metrics.EventsProcessed.WithLabelValues(ev.Event, string(result)).Inc()
	metrics.ProcessDuration.WithLabelValues(ev.Event).Observe(time.Since(start).Seconds())
	return result
}

func (p *Processor) process(ctx context.Context, ev *store.WebhookEvent) Result {
	classified, err := webhook.Classify(ghwebhooks.Event(ev.Event), ev.Payload)
	if errors.Is(err, webhook.ErrNotProcessable) {
		if err := p.store.DeleteWebhookEvent(ctx, ev.ID); err != nil {
			p.log.Error("delete non-processable event", "event_id", ev.ID, "kind", ev.Event, "err", err)
			return ResultFailure
		}
		p.log.Debug("non-processable event discarded", "event_id", ev.ID, "kind", ev.Event)
		return ResultNoop
	}
	if err != nil {
		p.log.Error("classify event", "event_id", ev.ID, "delivery", ev.Delivery, "kind", ev.Event, "err", err)
		return ResultFailure
	}

	d := webhook.Delivery{EventID: ev.ID, InstallationID: ev.InstallationID, ReceivedAt: ev.CreatedAt}
	if err := classified.Accept(ctx, d, p.handler); err != nil {
		if errors.Is(err, store.ErrDuplicateJobStats) {
			p.log.Info("job stats created concurrently", "event_id", ev.ID, "kind", ev.Event)
			return ResultNoop
		}
		p.log.Error("process event", "event_id", ev.ID, "delivery", ev.Delivery, "kind", ev.Event, "err", err)
		return ResultFailure
	}

	if err := p.store.MarkEventProcessed(ctx, ev.ID, p.now()); err != nil {
		p.log.Error("mark event processed", "event_id", ev.ID, "err", err)
		return ResultFailure
	}
	return ResultSuccess
}

// SweepSummary counts sweep outcomes by result.
type SweepSummary struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Noop    int `json:"noop"`
}

// Total is the number of events the sweep looked at.
func (s SweepSummary) Total() int {
	return s.Success + s.Failure + s.Noop
}

func (s *SweepSummary) add(r Result) {
	switch r {
	case ResultSuccess:
		s.Success++
	case ResultNoop:
		s.Noop++
	default:
		s.Failure++
	}
}

// Sweep re-drives up to limit events created before the given time that were never processed.
func (p *Processor) Sweep(ctx context.Context, before time.Time, limit int) (SweepSummary, error) {
	var summary SweepSummary
	ids, err := p.store.ListUnprocessedEvents(ctx, before, limit)
	if err != nil {
		return summary, err
	}
	for _, id := range ids {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		summary.add(p.Process(ctx, id))
	}
	p.log.Info("sweep finished", "events", len(ids), "success", summary.Success, "failure", summary.Failure, "noop", summary.Noop)
	return summary, nil
}
