package store

import (
	"context"

	sqrl "github.com/Masterminds/squirrel"
)

// runColumns are written by UpsertWorkflowRun; installation_id is set separately.
var runColumns = []string{
	"name", "node_id", "head_branch", "head_sha", "path", "display_title", "run_number",
	"event", "status", "conclusion", "workflow_id", "check_suite_id", "url", "html_url",
	"created_at", "updated_at", "run_started_at", "actor_id", "triggering_actor_id",
	"jobs_url", "logs_url", "rerun_url", "previous_attempt_url", "workflow_url",
	"head_commit", "repository_id", "head_repository_id",
}

var runSelect = append([]string{"id", "run_id", "run_attempt"}, append(runColumns, "installation_id")...)

func (s *SQL) UpsertWorkflowRun(ctx context.Context, r *WorkflowRun) (int64, error) {
	var id int64
	err := s.get(ctx, &id, s.sb.Insert(tWorkflowRuns).
		Columns(append([]string{"run_id", "run_attempt"}, runColumns...)...).
		Values(r.RunID, r.RunAttempt,
			r.Name, r.NodeID, r.HeadBranch, r.HeadSHA, r.Path, r.DisplayTitle, r.RunNumber,
			r.Event, r.Status, r.Conclusion, r.WorkflowID, r.CheckSuiteID, r.URL, r.HTMLURL,
			utcPtr(r.CreatedAt), utcPtr(r.UpdatedAt), utcPtr(r.RunStartedAt), r.ActorID, r.TriggeringActorID,
			r.JobsURL, r.LogsURL, r.RerunURL, r.PreviousAttemptURL, r.WorkflowURL,
			r.HeadCommit, r.RepositoryID, r.HeadRepositoryID).
		Suffix(upsertSuffix("run_id, run_attempt", runColumns...) + " RETURNING id"))
	if err != nil {
		return 0, err
	}
	r.ID = id
	return id, nil
}

func (s *SQL) EnsureWorkflowRun(ctx context.Context, runID, attempt, repoID int64) (*WorkflowRun, error) {
	_, err := s.exec(ctx, s.sb.Insert(tWorkflowRuns).
		Columns("run_id", "run_attempt", "repository_id").
		Values(runID, attempt, repoID).
		Suffix("ON CONFLICT (run_id, run_attempt) DO NOTHING"))
	if err != nil {
		return nil, err
	}
	return s.GetWorkflowRunByKey(ctx, runID, attempt)
}

func (s *SQL) GetWorkflowRun(ctx context.Context, id int64) (*WorkflowRun, error) {
	return s.getRun(ctx, sqrl.Eq{"id": id})
}

func (s *SQL) GetWorkflowRunByKey(ctx context.Context, runID, attempt int64) (*WorkflowRun, error) {
	return s.getRun(ctx, sqrl.Eq{"run_id": runID, "run_attempt": attempt})
}

func (s *SQL) getRun(ctx context.Context, where sqrl.Sqlizer) (*WorkflowRun, error) {
	var r WorkflowRun
	if err := s.get(ctx, &r, s.sb.Select(runSelect...).From(tWorkflowRuns).Where(where)); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQL) LinkRunPullRequests(ctx context.Context, runPK int64, prIDs []int64) error {
	if len(prIDs) == 0 {
		return nil
	}
	b := s.sb.Insert(tRunPullRequests).Columns("workflow_run_id", "pull_request_id")
	for _, id := range prIDs {
		b = b.Values(runPK, id)
	}
	_, err := s.exec(ctx, b.Suffix("ON CONFLICT DO NOTHING"))
	return err
}

func (s *SQL) LinkRunEvent(ctx context.Context, runPK, eventID int64) error {
	_, err := s.exec(ctx, s.sb.Insert(tRunWebhookEvents).
		Columns("workflow_run_id", "webhook_event_id").
		Values(runPK, eventID).
		Suffix("ON CONFLICT DO NOTHING"))
	return err
}

func (s *SQL) SetRunInstallation(ctx context.Context, runPK int64, installationID *int64) error {
	_, err := s.exec(ctx, s.sb.Update(tWorkflowRuns).
		Set("installation_id", installationID).
		Where(sqrl.Eq{"id": runPK}))
	return err
}

func (s *SQL) ListJobIDsForRun(ctx context.Context, runPK int64) ([]int64, error) {
	var ids []int64
	err := s.selectAll(ctx, &ids, s.sb.Select("id").From(tJobs).Where(sqrl.Eq{"workflow_run_id": runPK}).OrderBy("id"))
	return ids, err
}
