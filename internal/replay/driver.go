// Package replay pulls historical runs from the GitHub API and feeds them through the webhook
// ingestion path as synthetic deliveries, so demo installations have data to show.
package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ghwebhooks "github.com/go-playground/webhooks/v6/github"
	"github.com/google/uuid"

	"github.com/actions-insider/webhook-ingest/internal/github"
	"github.com/actions-insider/webhook-ingest/internal/ingest"
	"github.com/actions-insider/webhook-ingest/internal/metrics"
	"github.com/actions-insider/webhook-ingest/internal/processor"
	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

const (
	// RepositoryLimit caps how many repositories per organization are considered, most recently pushed first.
	RepositoryLimit = 50
	// RepositoryMaxAge skips repositories with no push in this window.
	RepositoryMaxAge = 30 * 24 * time.Hour
	// DemoTargetType is the installation target type header of every synthetic delivery.
	DemoTargetType = "demo"
)

// Receiver persists one delivery (see ingest.Receiver).
type Receiver interface {
	Receive(ctx context.Context, header http.Header, body []byte, userID *int64) (int64, error)
}

// EventProcessor processes one stored event (see processor.Processor).
type EventProcessor interface {
	Process(ctx context.Context, eventID int64) processor.Result
}

// Demo identifies the webhook and installation the synthetic deliveries claim to come from.
type Demo struct {
	WebhookID      int64
	InstallationID int64
}

// Driver replays one organization at a time. It owns its token pool; use one Driver per goroutine.
type Driver struct {
	upsert    *ingest.Upserter
	receiver  Receiver
	proc      EventProcessor
	clientFor func(token string) API
	pool      *TokenPool
	demo      Demo
	log       *slog.Logger
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewDriver(s store.Store, r Receiver, p EventProcessor, clientFor func(token string) API, tokens []string, demo Demo) (*Driver, error) {
	pool, err := NewTokenPool(tokens)
	if err != nil {
		return nil, err
	}
	return &Driver{
		upsert:    ingest.NewUpserter(s),
		receiver:  r,
		proc:      p,
		clientFor: clientFor,
		pool:      pool,
		demo:      demo,
		log:       slog.Default(),
		now:       time.Now,
		sleep:     sleepContext,
	}, nil
}

// ProcessOrganization replays every run attempt created since the given time in the organization's
// selected repositories. It returns the number of attempts replayed. Failures below the
// organization level are logged and skipped.
func (d *Driver) ProcessOrganization(ctx context.Context, login string, since time.Time) (int, error) {
	d.log.Info("replaying organization", "org", login, "since", since)
	org, err := withToken(ctx, d, func(api API) (*github.Account, error) {
		return api.GetOrganization(ctx, login)
	})
	if err != nil {
		return 0, fmt.Errorf("get organization %s: %w", login, err)
	}
	repos, err := d.selectRepositories(ctx, org.Login)
	if err != nil {
		return 0, err
	}
	if _, err := d.upsert.OwnerFromAPI(ctx, org); err != nil {
		return 0, fmt.Errorf("upsert organization %s: %w", login, err)
	}
	d.log.Info("repositories selected", "org", org.Login, "count", len(repos))

	total := 0
	for i := range repos {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := d.processRepository(ctx, org, &repos[i], since)
		total += n
		if err != nil {
			d.log.Error("replay repository", "repo", repos[i].FullName, "err", err)
		}
	}
	d.log.Info("organization replayed", "org", org.Login, "attempts", total)
	return total, nil
}

func (d *Driver) selectRepositories(ctx context.Context, org string) ([]github.Repository, error) {
	repos, err := withToken(ctx, d, func(api API) ([]github.Repository, error) {
		return api.ListOrgRepositories(ctx, org, RepositoryLimit)
	})
	if err != nil {
		return nil, fmt.Errorf("list repositories %s: %w", org, err)
	}
	if len(repos) > RepositoryLimit {
		repos = repos[:RepositoryLimit]
	}
	cutoff := d.now().Add(-RepositoryMaxAge)
	selected := repos[:0]
	for _, r := range repos {
		if r.PushedAt != nil && r.PushedAt.After(cutoff) {
			selected = append(selected, r)
		}
	}
	return selected, nil
}

func (d *Driver) processRepository(ctx context.Context, org *github.Account, repo *github.Repository, since time.Time) (int, error) {
	runs, err := withToken(ctx, d, func(api API) ([]github.Run, error) {
		return api.ListWorkflowRuns(ctx, repo.Owner.Login, repo.Name, since)
	})
	if err != nil {
		return 0, fmt.Errorf("list runs: %w", err)
	}
	repoID, err := d.upsert.RepositoryFromAPI(ctx, repo)
	if err != nil {
		return 0, fmt.Errorf("upsert repository: %w", err)
	}

	processed := 0
	for i := range runs {
		n, err := d.processRun(ctx, org, repo, *repoID, &runs[i])
		processed += n
		if err != nil {
			d.log.Error("replay run", "repo", repo.FullName, "run_id", runs[i].ID, "err", err)
		}
	}
	d.log.Info("repository replayed", "repo", repo.FullName, "attempts", processed)
	return processed, nil
}

func (d *Driver) processRun(ctx context.Context, org *github.Account, repo *github.Repository, repoID int64, run *github.Run) (int, error) {
	wf, err := withToken(ctx, d, func(api API) (*github.Workflow, error) {
		return api.GetWorkflow(ctx, run.WorkflowURL)
	})
	if err != nil {
		return 0, fmt.Errorf("get workflow: %w", err)
	}
	if _, err := d.upsert.WorkflowFromAPI(ctx, wf, repoID); err != nil {
		return 0, fmt.Errorf("upsert workflow: %w", err)
	}

	attempts := make([]*github.Run, 0, run.RunAttempt)
	for n := int64(1); n <= run.RunAttempt; n++ {
		attempt, err := withToken(ctx, d, func(api API) (*github.Run, error) {
			return api.GetRunAttempt(ctx, run.URL, n)
		})
		if err != nil {
			return 0, fmt.Errorf("get attempt %d: %w", n, err)
		}
		attempts = append(attempts, attempt)
	}

	for i, attempt := range attempts {
		if err := d.processAttempt(ctx, org, repo, wf, attempt); err != nil {
			return i, err
		}
	}
	return len(attempts), nil
}

func (d *Driver) processAttempt(ctx context.Context, org *github.Account, repo *github.Repository, wf *github.Workflow, attempt *github.Run) error {
	if _, err := d.upsert.PullRequestsFromAPI(ctx, attempt.PullRequests); err != nil {
		return fmt.Errorf("upsert pull requests: %w", err)
	}
	d.deliver(ctx, ghwebhooks.WorkflowRunEvent, runDelivery{
		Action:       attempt.Status,
		WorkflowRun:  attempt.Raw,
		Workflow:     wf.Raw,
		Repository:   repo.Raw,
		Organization: org.Raw,
		Sender:       Sender,
	})

	jobs, err := withToken(ctx, d, func(api API) ([]github.Job, error) {
		return api.ListJobs(ctx, attempt.JobsURL)
	})
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	for _, job := range jobs {
		d.deliver(ctx, ghwebhooks.WorkflowJobEvent, jobDelivery{
			Action:       job.Status,
			WorkflowJob:  job.Raw,
			Repository:   repo.Raw,
			Organization: org.Raw,
			Sender:       Sender,
		})
	}
	return nil
}

// deliver stores one synthetic delivery and processes it right away. Errors are logged.
func (d *Driver) deliver(ctx context.Context, kind ghwebhooks.Event, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		d.log.Error("marshal synthetic delivery", "kind", kind, "err", err)
		return
	}
	id, err := d.receiver.Receive(ctx, d.headers(kind), body, nil)
	if err != nil {
		d.log.Error("store synthetic delivery", "kind", kind, "err", err)
		return
	}
	metrics.ReplayDeliveries.WithLabelValues(string(kind)).Inc()
	if result := d.proc.Process(ctx, id); result == processor.ResultFailure {
		d.log.Warn("synthetic delivery failed", "event_id", id, "kind", kind)
	}
}

func (d *Driver) headers(kind ghwebhooks.Event) http.Header {
	hookID := d.demo.WebhookID
	targetID := d.demo.InstallationID
	targetType := DemoTargetType
	return webhook.Headers{
		Delivery:                   uuid.NewString(),
		Event:                      kind,
		HookID:                     &hookID,
		HookInstallationTargetID:   &targetID,
		HookInstallationTargetType: &targetType,
	}.Header()
}

// withToken calls fn with a client for the current token. On a rate limit it rotates the token,
// sleeping first when the whole pool is exhausted, and tries again.
func withToken[T any](ctx context.Context, d *Driver, fn func(API) (T, error)) (T, error) {
	for {
		v, err := fn(d.clientFor(d.pool.Token()))
		if !errors.Is(err, github.ErrRateLimited) {
			return v, err
		}
		metrics.ReplayRotations.Inc()
		wait := d.pool.Rotate()
		d.log.Info("rotating token", "remaining", d.pool.Remaining())
		if wait == 0 {
			continue
		}
		metrics.ReplayBackoffs.Inc()
		d.log.Warn("all tokens exhausted, backing off", "wait", wait)
		if err := d.sleep(ctx, wait); err != nil {
			var zero T
			return zero, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
