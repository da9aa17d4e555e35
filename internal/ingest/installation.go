package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

// Resolver maps a delivery to a real or artificial installation.
type Resolver struct {
	store store.Store
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{store: s}
}

// Resolve returns the installation for a delivery: the real one named by the payload's
// installation block, or an artificial one keyed by (host, hook id). userID, when set, is added
// to the installation's users.
func (r *Resolver) Resolve(ctx context.Context, h webhook.Headers, payload []byte, userID *int64) (*store.Installation, error) {
	var ref webhook.InstallationRef
	if err := json.Unmarshal(payload, &ref); err != nil {
		return nil, fmt.Errorf("%w: decode installation: %v", ErrMalformedBody, err)
	}

	key := store.InstallationKey{EnterpriseHost: h.Host()}
	switch {
	case ref.Installation != nil:
		key.InstallationID = ref.Installation.ID
	case h.HookID != nil:
		key.Artificial = true
		key.WebhookID = *h.HookID
	default:
		return nil, fmt.Errorf("%w: %s", ErrMissingHeader, webhook.HeaderHookID)
	}

	inst, err := r.store.GetOrCreateInstallation(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get or create installation: %w", err)
	}
	if userID != nil {
		if err := r.store.AddInstallationUser(ctx, inst.ID, *userID); err != nil {
			return nil, fmt.Errorf("add installation user: %w", err)
		}
	}
	return inst, nil
}
