package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/actions-insider/webhook-ingest/internal/metrics"
	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

var (
	ErrMissingHeader = errors.New("missing required header")
	ErrMalformedBody = errors.New("malformed webhook body")
)

// Receiver persists inbound deliveries. Processing happens later, by event id.
type Receiver struct {
	store    store.Store
	resolver *Resolver
	log      *slog.Logger
	now      func() time.Time
}

func NewReceiver(s store.Store) *Receiver {
	return &Receiver{
		store:    s,
		resolver: NewResolver(s),
		log:      slog.Default(),
		now:      time.Now,
	}
}

// Receive stores one delivery with processed_at unset and returns its id.
// The installation is resolved here, once per delivery.
func (r *Receiver) Receive(ctx context.Context, header http.Header, body []byte, userID *int64) (int64, error) {
	if !json.Valid(body) {
		return 0, ErrMalformedBody
	}
	h := webhook.ParseHeaders(header)
	if h.Event == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingHeader, webhook.HeaderEvent)
	}
	if h.HookID == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingHeader, webhook.HeaderHookID)
	}

	digest, err := webhook.Fingerprint(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	switch n, err := r.store.CountEventsByDigest(ctx, digest); {
	case err != nil:
		r.log.Warn("count events by digest", "digest", digest, "err", err)
	case n > 0:
		r.log.Info("duplicate payload received", "delivery", h.Delivery, "kind", h.Event, "digest", digest, "seen", n)
	}

	inst, err := r.resolver.Resolve(ctx, h, body, userID)
	if err != nil {
		return 0, err
	}

	ev := &store.WebhookEvent{
		Payload:                    types.JSONText(body),
		PayloadDigest:              digest,
		Delivery:                   h.Delivery,
		Event:                      string(h.Event),
		HookID:                     *h.HookID,
		HookInstallationTargetID:   h.HookInstallationTargetID,
		HookInstallationTargetType: h.HookInstallationTargetType,
		EnterpriseVersion:          h.EnterpriseVersion,
		EnterpriseHost:             h.EnterpriseHost,
		UserID:                     userID,
		InstallationID:             &inst.ID,
		CreatedAt:                  r.now(),
	}
	id, err := r.store.CreateWebhookEvent(ctx, ev)
	if err != nil {
		return 0, fmt.Errorf("create webhook event: %w", err)
	}
	metrics.EventsReceived.WithLabelValues(string(h.Event)).Inc()
	r.log.Debug("webhook event stored", "event_id", id, "delivery", h.Delivery, "kind", h.Event)
	return id, nil
}
