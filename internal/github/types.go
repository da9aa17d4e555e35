package github

import (
	"encoding/json"
	"time"
)

// Account is a user or organization as returned by /orgs/{org} or /users/{login}.
type Account struct {
	ID        int64   `json:"id"`
	Login     string  `json:"login"`
	AvatarURL *string `json:"avatar_url"`
	Type      string  `json:"type"`

	Raw json.RawMessage `json:"-"`
}

// Repository is the relevant part of a repository object.
type Repository struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	FullName string     `json:"full_name"`
	Owner    Account    `json:"owner"`
	PushedAt *time.Time `json:"pushed_at"`

	Raw json.RawMessage `json:"-"`
}

// Workflow is a workflow definition.
type Workflow struct {
	ID        int64      `json:"id"`
	NodeID    *string    `json:"node_id"`
	Name      string     `json:"name"`
	Path      string     `json:"path"`
	State     string     `json:"state"`
	URL       *string    `json:"url"`
	HTMLURL   *string    `json:"html_url"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	Raw json.RawMessage `json:"-"`
}

// PullRequest is the compact pull request shape embedded in runs.
type PullRequest struct {
	ID     int64   `json:"id"`
	Number *int64  `json:"number"`
	URL    *string `json:"url"`
}

// Run is one workflow run attempt.
type Run struct {
	ID           int64         `json:"id"`
	RunAttempt   int64         `json:"run_attempt"`
	Status       string        `json:"status"`
	URL          string        `json:"url"`
	JobsURL      string        `json:"jobs_url"`
	WorkflowURL  string        `json:"workflow_url"`
	CreatedAt    time.Time     `json:"created_at"`
	PullRequests []PullRequest `json:"pull_requests"`

	Raw json.RawMessage `json:"-"`
}

// Job is one job of a run attempt.
type Job struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`

	Raw json.RawMessage `json:"-"`
}

// decodeRaw unmarshals data into v and returns a copy of data for the Raw field.
func decodeRaw(data []byte, v any) (json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return append(json.RawMessage(nil), data...), nil
}
