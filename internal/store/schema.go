package store

import "strings"

// Table names.
const (
	tOwners            = "owners"
	tRepositories      = "repositories"
	tWorkflows         = "workflows"
	tPullRequests      = "pull_requests"
	tInstallations     = "installations"
	tInstallationUsers = "installation_users"
	tWebhookEvents     = "webhook_events"
	tWorkflowRuns      = "workflow_runs"
	tRunPullRequests   = "workflow_run_pull_requests"
	tRunWebhookEvents  = "workflow_run_webhook_events"
	tJobs              = "jobs"
	tJobWebhookEvents  = "job_webhook_events"
	tJobStats          = "job_stats"
	tJobStatsLabels    = "job_stats_labels"
)

// schema is rendered per dialect by renderDDL: {{serial}}, {{json}} and {{ts}} are replaced.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id BIGINT PRIMARY KEY,
		login TEXT NOT NULL,
		avatar_url TEXT,
		entity_type TEXT NOT NULL DEFAULT '',
		fetch_from_api BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS repositories (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		owner_id BIGINT NOT NULL REFERENCES owners(id),
		last_webhook_received {{ts}}
	)`,
	`CREATE TABLE IF NOT EXISTS workflows (
		id BIGINT PRIMARY KEY,
		repository_id BIGINT NOT NULL REFERENCES repositories(id),
		node_id TEXT,
		name TEXT NOT NULL,
		path TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		url TEXT,
		html_url TEXT,
		created_at {{ts}},
		updated_at {{ts}}
	)`,
	`CREATE TABLE IF NOT EXISTS pull_requests (
		id BIGINT PRIMARY KEY,
		number BIGINT,
		url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS installations (
		id {{serial}},
		installation_id BIGINT,
		enterprise_host TEXT NOT NULL,
		is_artificial BOOLEAN NOT NULL DEFAULT FALSE,
		webhook_id BIGINT,
		created_at {{ts}} NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS installations_real_key
		ON installations (installation_id, enterprise_host) WHERE NOT is_artificial`,
	`CREATE UNIQUE INDEX IF NOT EXISTS installations_artificial_key
		ON installations (enterprise_host, webhook_id) WHERE is_artificial`,
	`CREATE TABLE IF NOT EXISTS installation_users (
		installation_id BIGINT NOT NULL REFERENCES installations(id),
		user_id BIGINT NOT NULL,
		PRIMARY KEY (installation_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS webhook_events (
		id {{serial}},
		payload {{json}} NOT NULL,
		payload_digest TEXT NOT NULL DEFAULT '',
		delivery TEXT NOT NULL DEFAULT '',
		event TEXT NOT NULL,
		hook_id BIGINT NOT NULL,
		hook_installation_target_id BIGINT,
		hook_installation_target_type TEXT,
		enterprise_version TEXT,
		enterprise_host TEXT,
		user_id BIGINT,
		installation_id BIGINT REFERENCES installations(id),
		created_at {{ts}} NOT NULL,
		processed_at {{ts}}
	)`,
	`CREATE INDEX IF NOT EXISTS webhook_events_unprocessed ON webhook_events (processed_at, created_at)`,
	`CREATE INDEX IF NOT EXISTS webhook_events_digest ON webhook_events (payload_digest)`,
	`CREATE TABLE IF NOT EXISTS workflow_runs (
		id {{serial}},
		run_id BIGINT NOT NULL,
		run_attempt BIGINT NOT NULL,
		name TEXT,
		node_id TEXT,
		head_branch TEXT,
		head_sha TEXT,
		path TEXT,
		display_title TEXT,
		run_number BIGINT,
		event TEXT,
		status TEXT,
		conclusion TEXT,
		workflow_id BIGINT REFERENCES workflows(id),
		check_suite_id BIGINT,
		url TEXT,
		html_url TEXT,
		created_at {{ts}},
		updated_at {{ts}},
		run_started_at {{ts}},
		actor_id BIGINT REFERENCES owners(id),
		triggering_actor_id BIGINT REFERENCES owners(id),
		jobs_url TEXT,
		logs_url TEXT,
		rerun_url TEXT,
		previous_attempt_url TEXT,
		workflow_url TEXT,
		head_commit TEXT,
		repository_id BIGINT NOT NULL REFERENCES repositories(id),
		head_repository_id BIGINT REFERENCES repositories(id),
		installation_id BIGINT REFERENCES installations(id),
		UNIQUE (run_id, run_attempt)
	)`,
	`CREATE TABLE IF NOT EXISTS workflow_run_pull_requests (
		workflow_run_id BIGINT NOT NULL REFERENCES workflow_runs(id),
		pull_request_id BIGINT NOT NULL REFERENCES pull_requests(id),
		PRIMARY KEY (workflow_run_id, pull_request_id)
	)`,
	`CREATE TABLE IF NOT EXISTS workflow_run_webhook_events (
		workflow_run_id BIGINT NOT NULL REFERENCES workflow_runs(id),
		webhook_event_id BIGINT NOT NULL REFERENCES webhook_events(id),
		PRIMARY KEY (workflow_run_id, webhook_event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGINT PRIMARY KEY,
		workflow_run_id BIGINT REFERENCES workflow_runs(id),
		node_id TEXT,
		url TEXT,
		html_url TEXT,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		conclusion TEXT,
		created_at {{ts}},
		started_at {{ts}},
		completed_at {{ts}},
		steps {{json}} NOT NULL DEFAULT '[]',
		check_run_url TEXT,
		labels {{json}} NOT NULL DEFAULT '[]',
		runner_id BIGINT,
		runner_name TEXT,
		runner_group_id BIGINT,
		runner_group_name TEXT,
		installation_id BIGINT REFERENCES installations(id)
	)`,
	`CREATE INDEX IF NOT EXISTS jobs_workflow_run ON jobs (workflow_run_id)`,
	`CREATE TABLE IF NOT EXISTS job_webhook_events (
		job_id BIGINT NOT NULL REFERENCES jobs(id),
		webhook_event_id BIGINT NOT NULL REFERENCES webhook_events(id),
		PRIMARY KEY (job_id, webhook_event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS job_stats (
		id {{serial}},
		job_id BIGINT NOT NULL REFERENCES jobs(id),
		job_name TEXT NOT NULL,
		workflow_run_id BIGINT NOT NULL REFERENCES workflow_runs(id),
		workflow_id BIGINT NOT NULL REFERENCES workflows(id),
		workflow_name TEXT NOT NULL,
		repository_id BIGINT NOT NULL REFERENCES repositories(id),
		repository_name TEXT NOT NULL,
		owner_entity_id BIGINT NOT NULL REFERENCES owners(id),
		owner_entity_name TEXT NOT NULL,
		started_at {{ts}} NOT NULL,
		completed_at {{ts}} NOT NULL,
		execution_time BIGINT NOT NULL DEFAULT 0,
		billable_time BIGINT NOT NULL DEFAULT 0,
		event TEXT,
		installation_id BIGINT REFERENCES installations(id),
		CONSTRAINT unique_job_stats_for_job UNIQUE (job_id)
	)`,
	`CREATE INDEX IF NOT EXISTS job_stats_repository_started ON job_stats (repository_id, started_at)`,
	`CREATE TABLE IF NOT EXISTS job_stats_labels (
		id {{serial}},
		job_stats_id BIGINT NOT NULL REFERENCES job_stats(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		UNIQUE (job_stats_id, label)
	)`,
}

func renderDDL(stmt string, d Dialect) string {
	var r *strings.Replacer
	switch d {
	case DialectPostgres:
		r = strings.NewReplacer("{{serial}}", "BIGSERIAL PRIMARY KEY", "{{json}}", "JSONB", "{{ts}}", "TIMESTAMPTZ")
	default:
		r = strings.NewReplacer("{{serial}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{json}}", "TEXT", "{{ts}}", "DATETIME")
	}
	return r.Replace(stmt)
}
