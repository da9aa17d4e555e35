package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/actions-insider/webhook-ingest/internal/ingest"
	"github.com/actions-insider/webhook-ingest/internal/stats"
	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

// StatsRefresher recomputes the statistics row of one job.
type StatsRefresher interface {
	Refresh(ctx context.Context, jobID int64) (bool, error)
}

// Reconciler applies completed run and job deliveries to the stored model.
// Either may arrive first; each path refreshes job statistics after it runs.
type Reconciler struct {
	store  store.Store
	upsert *ingest.Upserter
	stats  StatsRefresher
	log    *slog.Logger
	now    func() time.Time
}

var _ webhook.Handler = (*Reconciler)(nil)

func NewReconciler(s store.Store, refresher StatsRefresher) *Reconciler {
	if refresher == nil {
		refresher = stats.NewEngine(s)
	}
	return &Reconciler{
		store:  s,
		upsert: ingest.NewUpserter(s),
		stats:  refresher,
		log:    slog.Default(),
		now:    time.Now,
	}
}

// HandleRun upserts the run attempt with its owners, repositories, pull requests and workflow,
// links the event, sets the installation, then refreshes stats for every job already attached.
func (r *Reconciler) HandleRun(ctx context.Context, d webhook.Delivery, ev webhook.RunCompleted) error {
	p := ev.Payload
	run := &p.WorkflowRun

	actorID, err := r.upsert.Owner(ctx, run.Actor)
	if err != nil {
		return err
	}
	triggeringActorID, err := r.upsert.Owner(ctx, run.TriggeringActor)
	if err != nil {
		return err
	}

	repoID, err := r.upsert.Repository(ctx, run.Repository)
	if err != nil {
		return err
	}
	if repoID == nil {
		return fmt.Errorf("%w: run %d has no repository", webhook.ErrInvalidPayload, run.ID)
	}
	headRepoID, err := r.upsert.Repository(ctx, run.HeadRepository)
	if err != nil {
		return err
	}
	prIDs, err := r.upsert.PullRequests(ctx, run.PullRequests)
	if err != nil {
		return err
	}

	workflowID, err := r.upsert.Workflow(ctx, p.Workflow, *repoID)
	if err != nil {
		return err
	}
	if workflowID == nil && run.WorkflowID != nil {
		workflowID, err = r.knownWorkflow(ctx, *run.WorkflowID)
		if err != nil {
			return err
		}
	}

	row := &store.WorkflowRun{
		RunID:              run.ID,
		RunAttempt:         run.RunAttempt,
		Name:               run.Name,
		NodeID:             run.NodeID,
		HeadBranch:         run.HeadBranch,
		HeadSHA:            run.HeadSHA,
		Path:               run.Path,
		DisplayTitle:       run.DisplayTitle,
		RunNumber:          run.RunNumber,
		Event:              run.Event,
		Status:             run.Status,
		Conclusion:         run.Conclusion,
		WorkflowID:         workflowID,
		CheckSuiteID:       run.CheckSuiteID,
		URL:                run.URL,
		HTMLURL:            run.HTMLURL,
		CreatedAt:          run.CreatedAt,
		UpdatedAt:          run.UpdatedAt,
		RunStartedAt:       run.RunStartedAt,
		ActorID:            actorID,
		TriggeringActorID:  triggeringActorID,
		JobsURL:            run.JobsURL,
		LogsURL:            run.LogsURL,
		RerunURL:           run.RerunURL,
		PreviousAttemptURL: run.PreviousAttemptURL,
		WorkflowURL:        run.WorkflowURL,
		RepositoryID:       *repoID,
		HeadRepositoryID:   headRepoID,
	}
	if run.HeadCommit != nil {
		row.HeadCommit = &run.HeadCommit.ID
	}
	runPK, err := r.store.UpsertWorkflowRun(ctx, row)
	if err != nil {
		return fmt.Errorf("upsert run %d attempt %d: %w", run.ID, run.RunAttempt, err)
	}
	if err := r.store.LinkRunPullRequests(ctx, runPK, prIDs); err != nil {
		return fmt.Errorf("link pull requests: %w", err)
	}
	if err := r.store.LinkRunEvent(ctx, runPK, d.EventID); err != nil {
		return fmt.Errorf("link run event: %w", err)
	}
	if err := r.store.SetRunInstallation(ctx, runPK, d.InstallationID); err != nil {
		return fmt.Errorf("set run installation: %w", err)
	}
	if err := r.store.TouchRepositoryWebhook(ctx, *repoID, r.now()); err != nil {
		return fmt.Errorf("touch repository: %w", err)
	}

	jobIDs, err := r.store.ListJobIDsForRun(ctx, runPK)
	if err != nil {
		return fmt.Errorf("list jobs of run %d: %w", runPK, err)
	}
	for _, jobID := range jobIDs {
		if _, err := r.stats.Refresh(ctx, jobID); err != nil {
			return err
		}
	}
	r.log.Debug("run reconciled", "event_id", d.EventID, "run_id", run.ID, "attempt", run.RunAttempt, "jobs", len(jobIDs))
	return nil
}

// knownWorkflow returns id when that workflow is already stored, nil otherwise.
func (r *Reconciler) knownWorkflow(ctx context.Context, id int64) (*int64, error) {
	if _, err := r.store.GetWorkflow(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workflow %d: %w", id, err)
	}
	return &id, nil
}

// HandleJob upserts the job with its tightened time window, links the event, attaches the job to
// its run attempt (creating a placeholder run if needed) and refreshes its statistics.
func (r *Reconciler) HandleJob(ctx context.Context, d webhook.Delivery, ev webhook.JobCompleted) error {
	p := ev.Payload
	if !webhook.IsProcessable(ev.Kind(), p.Action) {
		return webhook.ErrNotProcessable
	}
	job := &p.WorkflowJob

	startedAt, completedAt, err := webhook.JobWindow(job)
	if err != nil {
		return err
	}
	steps, err := json.Marshal(job.Steps)
	if err != nil {
		return fmt.Errorf("encode steps: %w", err)
	}
	labels := job.Labels
	if labels == nil {
		labels = []string{}
	}
	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return fmt.Errorf("encode labels: %w", err)
	}

	row := &store.Job{
		ID:              job.ID,
		NodeID:          job.NodeID,
		URL:             job.URL,
		HTMLURL:         job.HTMLURL,
		Name:            job.Name,
		Status:          job.Status,
		Conclusion:      job.Conclusion,
		CreatedAt:       job.CreatedAt,
		StartedAt:       &startedAt,
		CompletedAt:     &completedAt,
		Steps:           types.JSONText(steps),
		CheckRunURL:     job.CheckRunURL,
		Labels:          types.JSONText(labelsJSON),
		RunnerID:        job.RunnerID,
		RunnerName:      job.RunnerName,
		RunnerGroupID:   job.RunnerGroupID,
		RunnerGroupName: job.RunnerGroupName,
	}
	if err := r.store.UpsertJob(ctx, row); err != nil {
		return fmt.Errorf("upsert job %d: %w", job.ID, err)
	}
	if err := r.store.LinkJobEvent(ctx, job.ID, d.EventID); err != nil {
		return fmt.Errorf("link job event: %w", err)
	}

	run, err := r.resolveRun(ctx, p)
	if err != nil {
		return err
	}
	if err := r.store.SetJobRunAndInstallation(ctx, job.ID, run.ID, d.InstallationID); err != nil {
		return fmt.Errorf("attach job %d to run: %w", job.ID, err)
	}

	if _, err := r.stats.Refresh(ctx, job.ID); err != nil {
		return err
	}
	r.log.Debug("job reconciled", "event_id", d.EventID, "job_id", job.ID, "run_id", job.RunID, "attempt", job.RunAttempt)
	return nil
}

// resolveRun finds the job's run attempt, creating an empty placeholder when the job arrived first.
func (r *Reconciler) resolveRun(ctx context.Context, p *webhook.JobPayload) (*store.WorkflowRun, error) {
	job := &p.WorkflowJob
	run, err := r.store.GetWorkflowRunByKey(ctx, job.RunID, job.RunAttempt)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get run %d attempt %d: %w", job.RunID, job.RunAttempt, err)
	}

	repoID, err := r.upsert.Repository(ctx, p.Repository)
	if err != nil {
		return nil, err
	}
	if repoID == nil {
		return nil, fmt.Errorf("%w: job %d has no repository", webhook.ErrInvalidPayload, job.ID)
	}
	run, err = r.store.EnsureWorkflowRun(ctx, job.RunID, job.RunAttempt, *repoID)
	if err != nil {
		return nil, fmt.Errorf("create placeholder run %d attempt %d: %w", job.RunID, job.RunAttempt, err)
	}
	r.log.Info("placeholder run created", "run_id", job.RunID, "attempt", job.RunAttempt, "job_id", job.ID)
	return run, nil
}
