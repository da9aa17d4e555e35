package store

import (
	"context"
	"time"

	sqrl "github.com/Masterminds/squirrel"
)

var eventColumns = []string{
	"payload", "payload_digest", "delivery", "event", "hook_id", "hook_installation_target_id",
	"hook_installation_target_type", "enterprise_version", "enterprise_host", "user_id",
	"installation_id", "created_at", "processed_at",
}

// CreateWebhookEvent inserts the event with processed_at unset and returns its id.
func (s *SQL) CreateWebhookEvent(ctx context.Context, e *WebhookEvent) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	var id int64
	err := s.get(ctx, &id, s.sb.Insert(tWebhookEvents).
		Columns(eventColumns...).
		Values(jsonOr(e.Payload, "{}"), e.PayloadDigest, e.Delivery, e.Event, e.HookID, e.HookInstallationTargetID,
			e.HookInstallationTargetType, e.EnterpriseVersion, e.EnterpriseHost, e.UserID,
			e.InstallationID, e.CreatedAt.UTC(), nil).
		Suffix("RETURNING id"))
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

func (s *SQL) GetWebhookEvent(ctx context.Context, id int64) (*WebhookEvent, error) {
	var e WebhookEvent
	err := s.get(ctx, &e, s.sb.Select(append([]string{"id"}, eventColumns...)...).
		From(tWebhookEvents).Where(sqrl.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQL) DeleteWebhookEvent(ctx context.Context, id int64) error {
	_, err := s.exec(ctx, s.sb.Delete(tWebhookEvents).Where(sqrl.Eq{"id": id}))
	return err
}

func (s *SQL) MarkEventProcessed(ctx context.Context, id int64, at time.Time) error {
	_, err := s.exec(ctx, s.sb.Update(tWebhookEvents).Set("processed_at", at.UTC()).Where(sqrl.Eq{"id": id}))
	return err
}

func (s *SQL) ListUnprocessedEvents(ctx context.Context, before time.Time, limit int) ([]int64, error) {
	b := s.sb.Select("id").From(tWebhookEvents).
		Where(sqrl.Eq{"processed_at": nil}).
		Where(sqrl.Lt{"created_at": before.UTC()}).
		OrderBy("created_at", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	var ids []int64
	err := s.selectAll(ctx, &ids, b)
	return ids, err
}

// CountEventsByDigest counts stored events carrying the same payload fingerprint.
func (s *SQL) CountEventsByDigest(ctx context.Context, digest string) (int64, error) {
	var n int64
	err := s.get(ctx, &n, s.sb.Select("COUNT(*)").From(tWebhookEvents).Where(sqrl.Eq{"payload_digest": digest}))
	return n, err
}

func (s *SQL) EventCounts(ctx context.Context) (*EventCounts, error) {
	var c EventCounts
	err := s.get(ctx, &c, s.sb.Select(
		"COUNT(*) AS total",
		"COALESCE(SUM(CASE WHEN processed_at IS NULL THEN 1 ELSE 0 END), 0) AS unprocessed",
	).From(tWebhookEvents))
	if err != nil {
		return nil, err
	}
	return &c, nil
}
