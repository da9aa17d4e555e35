package webhook

import "time"

// Account is the compact owner shape used for actor, sender, organization and repository owner.
type Account struct {
	ID        int64   `json:"id"`
	Login     string  `json:"login"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Type      string  `json:"type"`
}

type Repository struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	FullName string   `json:"full_name,omitempty"`
	Owner    *Account `json:"owner,omitempty"`
}

type Workflow struct {
	ID        int64      `json:"id"`
	NodeID    *string    `json:"node_id,omitempty"`
	Name      string     `json:"name"`
	Path      string     `json:"path"`
	State     string     `json:"state"`
	URL       *string    `json:"url,omitempty"`
	HTMLURL   *string    `json:"html_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type PullRequest struct {
	ID     int64   `json:"id"`
	Number *int64  `json:"number,omitempty"`
	URL    *string `json:"url,omitempty"`
}

type HeadCommit struct {
	ID string `json:"id"`
}

type Installation struct {
	ID     int64   `json:"id"`
	NodeID *string `json:"node_id,omitempty"`
}

// Run is the workflow_run object of a workflow_run delivery.
type Run struct {
	ID                 int64         `json:"id"`
	RunAttempt         int64         `json:"run_attempt"`
	Name               *string       `json:"name,omitempty"`
	NodeID             *string       `json:"node_id,omitempty"`
	HeadBranch         *string       `json:"head_branch,omitempty"`
	HeadSHA            *string       `json:"head_sha,omitempty"`
	Path               *string       `json:"path,omitempty"`
	DisplayTitle       *string       `json:"display_title,omitempty"`
	RunNumber          *int64        `json:"run_number,omitempty"`
	Event              *string       `json:"event,omitempty"`
	Status             *string       `json:"status,omitempty"`
	Conclusion         *string       `json:"conclusion,omitempty"`
	WorkflowID         *int64        `json:"workflow_id,omitempty"`
	CheckSuiteID       *int64        `json:"check_suite_id,omitempty"`
	URL                *string       `json:"url,omitempty"`
	HTMLURL            *string       `json:"html_url,omitempty"`
	PullRequests       []PullRequest `json:"pull_requests,omitempty"`
	CreatedAt          *time.Time    `json:"created_at,omitempty"`
	UpdatedAt          *time.Time    `json:"updated_at,omitempty"`
	RunStartedAt       *time.Time    `json:"run_started_at,omitempty"`
	Actor              *Account      `json:"actor,omitempty"`
	TriggeringActor    *Account      `json:"triggering_actor,omitempty"`
	JobsURL            *string       `json:"jobs_url,omitempty"`
	LogsURL            *string       `json:"logs_url,omitempty"`
	RerunURL           *string       `json:"rerun_url,omitempty"`
	PreviousAttemptURL *string       `json:"previous_attempt_url,omitempty"`
	WorkflowURL        *string       `json:"workflow_url,omitempty"`
	HeadCommit         *HeadCommit   `json:"head_commit,omitempty"`
	Repository         *Repository   `json:"repository,omitempty"`
	HeadRepository     *Repository   `json:"head_repository,omitempty"`
}

// Step is one entry of a job's steps list.
type Step struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Conclusion  *string    `json:"conclusion"`
	Number      int64      `json:"number"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Job is the workflow_job object of a workflow_job delivery.
type Job struct {
	ID              int64      `json:"id"`
	RunID           int64      `json:"run_id"`
	RunAttempt      int64      `json:"run_attempt"`
	RunURL          *string    `json:"run_url,omitempty"`
	NodeID          *string    `json:"node_id,omitempty"`
	HeadSHA         *string    `json:"head_sha,omitempty"`
	URL             *string    `json:"url,omitempty"`
	HTMLURL         *string    `json:"html_url,omitempty"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	Conclusion      *string    `json:"conclusion,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	StartedAt       *time.Time `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	Steps           []Step     `json:"steps"`
	CheckRunURL     *string    `json:"check_run_url,omitempty"`
	Labels          []string   `json:"labels"`
	RunnerID        *int64     `json:"runner_id,omitempty"`
	RunnerName      *string    `json:"runner_name,omitempty"`
	RunnerGroupID   *int64     `json:"runner_group_id,omitempty"`
	RunnerGroupName *string    `json:"runner_group_name,omitempty"`
}

// RunPayload is the body of a workflow_run delivery.
type RunPayload struct {
	Action       string        `json:"action"`
	WorkflowRun  Run           `json:"workflow_run"`
	Workflow     *Workflow     `json:"workflow,omitempty"`
	Repository   *Repository   `json:"repository,omitempty"`
	Organization *Account      `json:"organization,omitempty"`
	Sender       *Account      `json:"sender,omitempty"`
	Installation *Installation `json:"installation,omitempty"`
}

// JobPayload is the body of a workflow_job delivery.
type JobPayload struct {
	Action       string        `json:"action"`
	WorkflowJob  Job           `json:"workflow_job"`
	Repository   *Repository   `json:"repository,omitempty"`
	Organization *Account      `json:"organization,omitempty"`
	Sender       *Account      `json:"sender,omitempty"`
	Installation *Installation `json:"installation,omitempty"`
}

// InstallationRef extracts the installation block of any delivery body.
type InstallationRef struct {
	Installation *Installation `json:"installation"`
}
