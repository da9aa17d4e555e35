package store

//go:generate go run go.uber.org/mock/mockgen -destination store_mock.gen.go -package store . Store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by single-row reads when no row matches.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateJobStats is returned when a concurrent writer created the job_stats row first.
	ErrDuplicateJobStats = errors.New("store: job stats with this job already exists")
)

// Store is the persistence interface. Ingestion, processing, replay and the server depend only on
// this interface. Only main and this package know about the database driver.
type Store interface {
	Ping(ctx context.Context) error

	UpsertOwner(ctx context.Context, owner *Owner) error
	UpsertRepository(ctx context.Context, repo *Repository) error
	UpsertWorkflow(ctx context.Context, wf *Workflow) error
	UpsertPullRequest(ctx context.Context, pr *PullRequest) error
	GetWorkflow(ctx context.Context, id int64) (*Workflow, error)
	TouchRepositoryWebhook(ctx context.Context, repoID int64, at time.Time) error
	ListFetchOwners(ctx context.Context) ([]Owner, error)

	// UpsertWorkflowRun writes every field keyed by (run_id, run_attempt) and returns the surrogate id.
	UpsertWorkflowRun(ctx context.Context, run *WorkflowRun) (int64, error)
	// EnsureWorkflowRun returns the run for (runID, attempt), creating an empty placeholder if absent.
	EnsureWorkflowRun(ctx context.Context, runID, attempt, repoID int64) (*WorkflowRun, error)
	GetWorkflowRun(ctx context.Context, id int64) (*WorkflowRun, error)
	GetWorkflowRunByKey(ctx context.Context, runID, attempt int64) (*WorkflowRun, error)
	LinkRunPullRequests(ctx context.Context, runPK int64, prIDs []int64) error
	LinkRunEvent(ctx context.Context, runPK, eventID int64) error
	SetRunInstallation(ctx context.Context, runPK int64, installationID *int64) error
	ListJobIDsForRun(ctx context.Context, runPK int64) ([]int64, error)

	UpsertJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	LinkJobEvent(ctx context.Context, jobID, eventID int64) error
	SetJobRunAndInstallation(ctx context.Context, jobID, runPK int64, installationID *int64) error

	GetJobStatsSource(ctx context.Context, jobID int64) (*JobStatsSource, error)
	// SaveJobStats updates the row for stats.JobID or creates it, then adds any missing labels.
	// Returns ErrDuplicateJobStats when the create path loses a race.
	SaveJobStats(ctx context.Context, stats *JobStats, labels []string) (int64, error)
	GetJobStats(ctx context.Context, jobID int64) (*JobStats, error)
	ListJobStatsLabels(ctx context.Context, statsID int64) ([]string, error)
	UsageByLabel(ctx context.Context, filter UsageFilter) ([]LabelUsage, error)
	UsageTotals(ctx context.Context, filter UsageFilter) (*UsageTotals, error)

	GetOrCreateInstallation(ctx context.Context, key InstallationKey) (*Installation, error)
	AddInstallationUser(ctx context.Context, installationID, userID int64) error

	CreateWebhookEvent(ctx context.Context, event *WebhookEvent) (int64, error)
	GetWebhookEvent(ctx context.Context, id int64) (*WebhookEvent, error)
	DeleteWebhookEvent(ctx context.Context, id int64) error
	MarkEventProcessed(ctx context.Context, id int64, at time.Time) error
	// ListUnprocessedEvents returns ids of events with no processed_at created before the given time, oldest first.
	ListUnprocessedEvents(ctx context.Context, before time.Time, limit int) ([]int64, error)
	CountEventsByDigest(ctx context.Context, digest string) (int64, error)
	EventCounts(ctx context.Context) (*EventCounts, error)
}
