package store

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Owner entity kinds as reported by GitHub.
const (
	EntityTypeUser         = "User"
	EntityTypeOrganization = "Organization"
)

// Owner is a user or organization account.
type Owner struct {
	ID           int64   `db:"id"`
	Login        string  `db:"login"`
	AvatarURL    *string `db:"avatar_url"`
	EntityType   string  `db:"entity_type"`
	FetchFromAPI bool    `db:"fetch_from_api"`
}

// Repository is the row shape for repositories.
type Repository struct {
	ID                  int64      `db:"id"`
	Name                string     `db:"name"`
	OwnerID             int64      `db:"owner_id"`
	LastWebhookReceived *time.Time `db:"last_webhook_received"`
}

// Workflow is the row shape for workflows.
type Workflow struct {
	ID           int64      `db:"id"`
	RepositoryID int64      `db:"repository_id"`
	NodeID       *string    `db:"node_id"`
	Name         string     `db:"name"`
	Path         string     `db:"path"`
	State        string     `db:"state"`
	URL          *string    `db:"url"`
	HTMLURL      *string    `db:"html_url"`
	CreatedAt    *time.Time `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// PullRequest is the row shape for pull_requests.
type PullRequest struct {
	ID     int64   `db:"id"`
	Number *int64  `db:"number"`
	URL    *string `db:"url"`
}

// WorkflowRun is one attempt of a run. ID is the surrogate key; (RunID, RunAttempt) is unique.
// A placeholder run only carries RunID, RunAttempt and RepositoryID.
type WorkflowRun struct {
	ID                 int64      `db:"id"`
	RunID              int64      `db:"run_id"`
	RunAttempt         int64      `db:"run_attempt"`
	Name               *string    `db:"name"`
	NodeID             *string    `db:"node_id"`
	HeadBranch         *string    `db:"head_branch"`
	HeadSHA            *string    `db:"head_sha"`
	Path               *string    `db:"path"`
	DisplayTitle       *string    `db:"display_title"`
	RunNumber          *int64     `db:"run_number"`
	Event              *string    `db:"event"`
	Status             *string    `db:"status"`
	Conclusion         *string    `db:"conclusion"`
	WorkflowID         *int64     `db:"workflow_id"`
	CheckSuiteID       *int64     `db:"check_suite_id"`
	URL                *string    `db:"url"`
	HTMLURL            *string    `db:"html_url"`
	CreatedAt          *time.Time `db:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at"`
	RunStartedAt       *time.Time `db:"run_started_at"`
	ActorID            *int64     `db:"actor_id"`
	TriggeringActorID  *int64     `db:"triggering_actor_id"`
	JobsURL            *string    `db:"jobs_url"`
	LogsURL            *string    `db:"logs_url"`
	RerunURL           *string    `db:"rerun_url"`
	PreviousAttemptURL *string    `db:"previous_attempt_url"`
	WorkflowURL        *string    `db:"workflow_url"`
	HeadCommit         *string    `db:"head_commit"`
	RepositoryID       int64      `db:"repository_id"`
	HeadRepositoryID   *int64     `db:"head_repository_id"`
	InstallationID     *int64     `db:"installation_id"`
}

// Job is the row shape for jobs. ID is the GitHub job id.
type Job struct {
	ID              int64          `db:"id"`
	WorkflowRunID   *int64         `db:"workflow_run_id"`
	NodeID          *string        `db:"node_id"`
	URL             *string        `db:"url"`
	HTMLURL         *string        `db:"html_url"`
	Name            string         `db:"name"`
	Status          string         `db:"status"`
	Conclusion      *string        `db:"conclusion"`
	CreatedAt       *time.Time     `db:"created_at"`
	StartedAt       *time.Time     `db:"started_at"`
	CompletedAt     *time.Time     `db:"completed_at"`
	Steps           types.JSONText `db:"steps"`
	CheckRunURL     *string        `db:"check_run_url"`
	Labels          types.JSONText `db:"labels"`
	RunnerID        *int64         `db:"runner_id"`
	RunnerName      *string        `db:"runner_name"`
	RunnerGroupID   *int64         `db:"runner_group_id"`
	RunnerGroupName *string        `db:"runner_group_name"`
	InstallationID  *int64         `db:"installation_id"`
}

// LabelList decodes the stored label array. Malformed or empty values yield nil.
func (j *Job) LabelList() []string {
	return decodeLabels(j.Labels)
}

// JobStats is the denormalized statistics row, one per job.
type JobStats struct {
	ID              int64         `db:"id"`
	JobID           int64         `db:"job_id"`
	JobName         string        `db:"job_name"`
	WorkflowRunID   int64         `db:"workflow_run_id"`
	WorkflowID      int64         `db:"workflow_id"`
	WorkflowName    string        `db:"workflow_name"`
	RepositoryID    int64         `db:"repository_id"`
	RepositoryName  string        `db:"repository_name"`
	OwnerID         int64         `db:"owner_entity_id"`
	OwnerName       string        `db:"owner_entity_name"`
	StartedAt       time.Time     `db:"started_at"`
	CompletedAt     time.Time     `db:"completed_at"`
	ExecutionTime   time.Duration `db:"execution_time"`
	BillableTime    time.Duration `db:"billable_time"`
	Event           *string       `db:"event"`
	InstallationID  *int64        `db:"installation_id"`
}

// JobStatsSource is a job joined with everything its statistics row denormalizes.
// Pointer fields are nil when the corresponding record is not known yet.
type JobStatsSource struct {
	JobID          int64          `db:"job_id"`
	JobName        string         `db:"job_name"`
	StartedAt      *time.Time     `db:"started_at"`
	CompletedAt    *time.Time     `db:"completed_at"`
	Labels         types.JSONText `db:"labels"`
	InstallationID *int64         `db:"installation_id"`
	WorkflowRunID  *int64         `db:"workflow_run_id"`
	Event          *string        `db:"event"`
	WorkflowID     *int64         `db:"workflow_id"`
	WorkflowName   *string        `db:"workflow_name"`
	RepositoryID   *int64         `db:"repository_id"`
	RepositoryName *string        `db:"repository_name"`
	OwnerID        *int64         `db:"owner_id"`
	OwnerLogin     *string        `db:"owner_login"`
}

// LabelList decodes the job's label array.
func (s *JobStatsSource) LabelList() []string {
	return decodeLabels(s.Labels)
}

// WebhookEvent is one inbound delivery. ProcessedAt is the only completion marker.
type WebhookEvent struct {
	ID                         int64          `db:"id"`
	Payload                    types.JSONText `db:"payload"`
	PayloadDigest              string         `db:"payload_digest"`
	Delivery                   string         `db:"delivery"`
	Event                      string         `db:"event"`
	HookID                     int64          `db:"hook_id"`
	HookInstallationTargetID   *int64         `db:"hook_installation_target_id"`
	HookInstallationTargetType *string        `db:"hook_installation_target_type"`
	EnterpriseVersion          *string        `db:"enterprise_version"`
	EnterpriseHost             *string        `db:"enterprise_host"`
	UserID                     *int64         `db:"user_id"`
	InstallationID             *int64         `db:"installation_id"`
	CreatedAt                  time.Time      `db:"created_at"`
	ProcessedAt                *time.Time     `db:"processed_at"`
}

// Installation is a real GitHub App installation or an artificial one standing in for a
// plain repository/organization webhook.
type Installation struct {
	ID             int64     `db:"id"`
	InstallationID *int64    `db:"installation_id"`
	EnterpriseHost string    `db:"enterprise_host"`
	IsArtificial   bool      `db:"is_artificial"`
	WebhookID      *int64    `db:"webhook_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// InstallationKey identifies an installation. Real keys use InstallationID, artificial keys use WebhookID.
type InstallationKey struct {
	EnterpriseHost string
	InstallationID int64
	WebhookID      int64
	Artificial     bool
}

// UsageFilter narrows reporting queries. Empty RepositoryIDs means no repository restriction.
type UsageFilter struct {
	RepositoryIDs []int64
	Since         *time.Time
	Until         *time.Time
}

// LabelUsage aggregates job statistics for one runner label.
type LabelUsage struct {
	Label         string        `db:"label" json:"label"`
	Jobs          int64         `db:"jobs" json:"jobs"`
	ExecutionTime time.Duration `db:"execution_time" json:"execution_time"`
	BillableTime  time.Duration `db:"billable_time" json:"billable_time"`
}

// UsageTotals aggregates job statistics across all labels.
type UsageTotals struct {
	Jobs          int64         `db:"jobs" json:"jobs"`
	ExecutionTime time.Duration `db:"execution_time" json:"execution_time"`
	BillableTime  time.Duration `db:"billable_time" json:"billable_time"`
}

// EventCounts summarizes the webhook_events table.
type EventCounts struct {
	Total       int64 `db:"total" json:"total"`
	Unprocessed int64 `db:"unprocessed" json:"unprocessed"`
}

func decodeLabels(raw types.JSONText) []string {
	if len(raw) == 0 {
		return nil
	}
	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil
	}
	return labels
}
