package ingest

import (
	"context"
	"fmt"

	"github.com/actions-insider/webhook-ingest/internal/github"
	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

// Upserter writes owners, repositories, workflows and pull requests keyed by their GitHub ids.
// Payload and API shapes converge on the same store upserts; every call overwrites all fields.
type Upserter struct {
	store store.Store
}

func NewUpserter(s store.Store) *Upserter {
	return &Upserter{store: s}
}

// Owner upserts a compact account. A nil account is skipped and yields a nil id.
func (u *Upserter) Owner(ctx context.Context, a *webhook.Account) (*int64, error) {
	if a == nil {
		return nil, nil
	}
	if err := u.store.UpsertOwner(ctx, &store.Owner{
		ID:         a.ID,
		Login:      a.Login,
		AvatarURL:  a.AvatarURL,
		EntityType: a.Type,
	}); err != nil {
		return nil, fmt.Errorf("upsert owner %d: %w", a.ID, err)
	}
	id := a.ID
	return &id, nil
}

// Repository upserts a compact repository and its owner. A nil repository yields a nil id.
func (u *Upserter) Repository(ctx context.Context, r *webhook.Repository) (*int64, error) {
	if r == nil {
		return nil, nil
	}
	if r.Owner == nil {
		return nil, fmt.Errorf("repository %d has no owner", r.ID)
	}
	if _, err := u.Owner(ctx, r.Owner); err != nil {
		return nil, err
	}
	if err := u.store.UpsertRepository(ctx, &store.Repository{ID: r.ID, Name: r.Name, OwnerID: r.Owner.ID}); err != nil {
		return nil, fmt.Errorf("upsert repository %d: %w", r.ID, err)
	}
	id := r.ID
	return &id, nil
}

// Workflow upserts a compact workflow belonging to repoID. A nil workflow yields a nil id.
func (u *Upserter) Workflow(ctx context.Context, w *webhook.Workflow, repoID int64) (*int64, error) {
	if w == nil {
		return nil, nil
	}
	if err := u.store.UpsertWorkflow(ctx, &store.Workflow{
		ID:           w.ID,
		RepositoryID: repoID,
		NodeID:       w.NodeID,
		Name:         w.Name,
		Path:         w.Path,
		State:        w.State,
		URL:          w.URL,
		HTMLURL:      w.HTMLURL,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}); err != nil {
		return nil, fmt.Errorf("upsert workflow %d: %w", w.ID, err)
	}
	id := w.ID
	return &id, nil
}

// PullRequests upserts each pull request and returns their ids in order.
func (u *Upserter) PullRequests(ctx context.Context, prs []webhook.PullRequest) ([]int64, error) {
	ids := make([]int64, 0, len(prs))
	for _, pr := range prs {
		if err := u.store.UpsertPullRequest(ctx, &store.PullRequest{ID: pr.ID, Number: pr.Number, URL: pr.URL}); err != nil {
			return nil, fmt.Errorf("upsert pull request %d: %w", pr.ID, err)
		}
		ids = append(ids, pr.ID)
	}
	return ids, nil
}

func (u *Upserter) OwnerFromAPI(ctx context.Context, a *github.Account) (*int64, error) {
	if a == nil {
		return nil, nil
	}
	return u.Owner(ctx, &webhook.Account{ID: a.ID, Login: a.Login, AvatarURL: a.AvatarURL, Type: a.Type})
}

func (u *Upserter) RepositoryFromAPI(ctx context.Context, r *github.Repository) (*int64, error) {
	if r == nil {
		return nil, nil
	}
	owner := &webhook.Account{ID: r.Owner.ID, Login: r.Owner.Login, AvatarURL: r.Owner.AvatarURL, Type: r.Owner.Type}
	return u.Repository(ctx, &webhook.Repository{ID: r.ID, Name: r.Name, FullName: r.FullName, Owner: owner})
}

func (u *Upserter) WorkflowFromAPI(ctx context.Context, w *github.Workflow, repoID int64) (*int64, error) {
	if w == nil {
		return nil, nil
	}
	return u.Workflow(ctx, &webhook.Workflow{
		ID:        w.ID,
		NodeID:    w.NodeID,
		Name:      w.Name,
		Path:      w.Path,
		State:     w.State,
		URL:       w.URL,
		HTMLURL:   w.HTMLURL,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}, repoID)
}

func (u *Upserter) PullRequestsFromAPI(ctx context.Context, prs []github.PullRequest) ([]int64, error) {
	converted := make([]webhook.PullRequest, 0, len(prs))
	for _, pr := range prs {
		converted = append(converted, webhook.PullRequest{ID: pr.ID, Number: pr.Number, URL: pr.URL})
	}
	return u.PullRequests(ctx, converted)
}
