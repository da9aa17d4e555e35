package replay

import (
	"context"
	"time"

	"github.com/actions-insider/webhook-ingest/internal/github"
)

//go:generate go run go.uber.org/mock/mockgen -destination api_mock.gen.go -package replay . API

// API is the part of the GitHub REST API the driver reads from.
type API interface {
	GetOrganization(ctx context.Context, login string) (*github.Account, error)
	ListOrgRepositories(ctx context.Context, org string, limit int) ([]github.Repository, error)
	ListWorkflowRuns(ctx context.Context, owner, repo string, since time.Time) ([]github.Run, error)
	GetRunAttempt(ctx context.Context, runURL string, n int64) (*github.Run, error)
	GetWorkflow(ctx context.Context, workflowURL string) (*github.Workflow, error)
	ListJobs(ctx context.Context, jobsURL string) ([]github.Job, error)
}

// GitHubClients returns a client factory for the driver, one token-scoped copy of base per call.
func GitHubClients(base *github.Client) func(token string) API {
	return func(token string) API {
		return base.WithToken(token)
	}
}
