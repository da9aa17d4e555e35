package store

import (
	"context"

	sqrl "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx/types"
)

var jobColumns = []string{
	"workflow_run_id", "node_id", "url", "html_url", "name", "status", "conclusion",
	"created_at", "started_at", "completed_at", "steps", "check_run_url", "labels",
	"runner_id", "runner_name", "runner_group_id", "runner_group_name", "installation_id",
}

// UpsertJob creates or overwrites the job keyed by its GitHub id. A nil run or installation
// keeps the value already stored.
func (s *SQL) UpsertJob(ctx context.Context, j *Job) error {
	suffix := upsertSuffix("id", jobColumns[1:len(jobColumns)-1]...) +
		", workflow_run_id = COALESCE(excluded.workflow_run_id, jobs.workflow_run_id)" +
		", installation_id = COALESCE(excluded.installation_id, jobs.installation_id)"
	_, err := s.exec(ctx, s.sb.Insert(tJobs).
		Columns(append([]string{"id"}, jobColumns...)...).
		Values(j.ID, j.WorkflowRunID, j.NodeID, j.URL, j.HTMLURL, j.Name, j.Status, j.Conclusion,
			utcPtr(j.CreatedAt), utcPtr(j.StartedAt), utcPtr(j.CompletedAt), jsonOr(j.Steps, "[]"), j.CheckRunURL, jsonOr(j.Labels, "[]"),
			j.RunnerID, j.RunnerName, j.RunnerGroupID, j.RunnerGroupName, j.InstallationID).
		Suffix(suffix))
	return err
}

func (s *SQL) GetJob(ctx context.Context, id int64) (*Job, error) {
	var j Job
	err := s.get(ctx, &j, s.sb.Select(append([]string{"id"}, jobColumns...)...).From(tJobs).Where(sqrl.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *SQL) LinkJobEvent(ctx context.Context, jobID, eventID int64) error {
	_, err := s.exec(ctx, s.sb.Insert(tJobWebhookEvents).
		Columns("job_id", "webhook_event_id").
		Values(jobID, eventID).
		Suffix("ON CONFLICT DO NOTHING"))
	return err
}

func (s *SQL) SetJobRunAndInstallation(ctx context.Context, jobID, runPK int64, installationID *int64) error {
	_, err := s.exec(ctx, s.sb.Update(tJobs).
		Set("workflow_run_id", runPK).
		Set("installation_id", installationID).
		Where(sqrl.Eq{"id": jobID}))
	return err
}

// jsonOr returns fallback when raw is empty so NOT NULL json columns always hold a valid document.
func jsonOr(raw types.JSONText, fallback string) types.JSONText {
	if len(raw) == 0 || string(raw) == "null" {
		return types.JSONText(fallback)
	}
	return raw
}
