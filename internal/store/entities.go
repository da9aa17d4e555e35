package store

import (
	"context"
	"time"

	sqrl "github.com/Masterminds/squirrel"
)

// UpsertOwner creates or overwrites the owner. fetch_from_api is left untouched on update.
func (s *SQL) UpsertOwner(ctx context.Context, o *Owner) error {
	_, err := s.exec(ctx, s.sb.Insert(tOwners).
		Columns("id", "login", "avatar_url", "entity_type").
		Values(o.ID, o.Login, o.AvatarURL, o.EntityType).
		Suffix(upsertSuffix("id", "login", "avatar_url", "entity_type")))
	return err
}

// UpsertRepository creates or overwrites the repository. last_webhook_received is left untouched.
func (s *SQL) UpsertRepository(ctx context.Context, r *Repository) error {
	_, err := s.exec(ctx, s.sb.Insert(tRepositories).
		Columns("id", "name", "owner_id").
		Values(r.ID, r.Name, r.OwnerID).
		Suffix(upsertSuffix("id", "name", "owner_id")))
	return err
}

func (s *SQL) UpsertWorkflow(ctx context.Context, w *Workflow) error {
	cols := []string{"repository_id", "node_id", "name", "path", "state", "url", "html_url", "created_at", "updated_at"}
	_, err := s.exec(ctx, s.sb.Insert(tWorkflows).
		Columns(append([]string{"id"}, cols...)...).
		Values(w.ID, w.RepositoryID, w.NodeID, w.Name, w.Path, w.State, w.URL, w.HTMLURL, utcPtr(w.CreatedAt), utcPtr(w.UpdatedAt)).
		Suffix(upsertSuffix("id", cols...)))
	return err
}

func (s *SQL) UpsertPullRequest(ctx context.Context, pr *PullRequest) error {
	_, err := s.exec(ctx, s.sb.Insert(tPullRequests).
		Columns("id", "number", "url").
		Values(pr.ID, pr.Number, pr.URL).
		Suffix(upsertSuffix("id", "number", "url")))
	return err
}

func (s *SQL) GetWorkflow(ctx context.Context, id int64) (*Workflow, error) {
	var w Workflow
	err := s.get(ctx, &w, s.sb.Select("id", "repository_id", "node_id", "name", "path", "state", "url", "html_url", "created_at", "updated_at").
		From(tWorkflows).Where(sqrl.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// TouchRepositoryWebhook records the time the repository last produced a processed webhook.
func (s *SQL) TouchRepositoryWebhook(ctx context.Context, repoID int64, at time.Time) error {
	_, err := s.exec(ctx, s.sb.Update(tRepositories).
		Set("last_webhook_received", at.UTC()).
		Where(sqrl.Eq{"id": repoID}))
	return err
}

// ListFetchOwners returns the owners flagged for API replay.
func (s *SQL) ListFetchOwners(ctx context.Context) ([]Owner, error) {
	var owners []Owner
	err := s.selectAll(ctx, &owners, s.sb.Select("id", "login", "avatar_url", "entity_type", "fetch_from_api").
		From(tOwners).Where(sqrl.Eq{"fetch_from_api": true}).OrderBy("id"))
	return owners, err
}

// SetOwnerFetchFromAPI flags or unflags an owner for replay.
func (s *SQL) SetOwnerFetchFromAPI(ctx context.Context, ownerID int64, fetch bool) error {
	res, err := s.exec(ctx, s.sb.Update(tOwners).Set("fetch_from_api", fetch).Where(sqrl.Eq{"id": ownerID}))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
