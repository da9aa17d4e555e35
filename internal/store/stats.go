package store

import (
	"context"
	"database/sql"
	"fmt"

	sqrl "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var statsColumns = []string{
	"job_name", "workflow_run_id", "workflow_id", "workflow_name", "repository_id", "repository_name",
	"owner_entity_id", "owner_entity_name", "started_at", "completed_at", "execution_time",
	"billable_time", "event", "installation_id",
}

// GetJobStatsSource loads a job with its run, workflow, repository and owner.
func (s *SQL) GetJobStatsSource(ctx context.Context, jobID int64) (*JobStatsSource, error) {
	var src JobStatsSource
	err := s.get(ctx, &src, s.sb.Select(
		"j.id AS job_id", "j.name AS job_name", "j.started_at", "j.completed_at", "j.labels", "j.installation_id",
		"r.id AS workflow_run_id", "r.event", "w.id AS workflow_id", "w.name AS workflow_name",
		"repo.id AS repository_id", "repo.name AS repository_name", "o.id AS owner_id", "o.login AS owner_login",
	).
		From(tJobs + " j").
		LeftJoin(tWorkflowRuns + " r ON r.id = j.workflow_run_id").
		LeftJoin(tWorkflows + " w ON w.id = r.workflow_id").
		LeftJoin(tRepositories + " repo ON repo.id = r.repository_id").
		LeftJoin(tOwners + " o ON o.id = repo.owner_id").
		Where(sqrl.Eq{"j.id": jobID}))
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SQL) SaveJobStats(ctx context.Context, st *JobStats, labels []string) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	values := statsValues(st)
	set := make(map[string]any, len(statsColumns))
	for i, c := range statsColumns {
		set[c] = values[i]
	}
	res, err := txExec(ctx, tx, s.sb.Update(tJobStats).SetMap(set).Where(sqrl.Eq{"job_id": st.JobID}))
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if err := s.insertJobStats(ctx, tx, st); err != nil {
			return 0, err
		}
	}

	var id int64
	q, args, err := s.sb.Select("id").From(tJobStats).Where(sqrl.Eq{"job_id": st.JobID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	if err := tx.GetContext(ctx, &id, q, args...); err != nil {
		return 0, err
	}

	if len(labels) > 0 {
		b := s.sb.Insert(tJobStatsLabels).Columns("job_stats_id", "label")
		for _, l := range labels {
			b = b.Values(id, l)
		}
		if _, err := txExec(ctx, tx, b.Suffix("ON CONFLICT DO NOTHING")); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	st.ID = id
	return id, nil
}

// insertJobStats adds the row for st.JobID. A row inserted concurrently for the same job
// yields ErrDuplicateJobStats.
func (s *SQL) insertJobStats(ctx context.Context, tx *sqlx.Tx, st *JobStats) error {
	_, err := txExec(ctx, tx, s.sb.Insert(tJobStats).
		Columns(append([]string{"job_id"}, statsColumns...)...).
		Values(append([]any{st.JobID}, statsValues(st)...)...))
	if isUniqueViolation(err) {
		return ErrDuplicateJobStats
	}
	return err
}

func statsValues(st *JobStats) []any {
	return []any{
		st.JobName, st.WorkflowRunID, st.WorkflowID, st.WorkflowName, st.RepositoryID, st.RepositoryName,
		st.OwnerID, st.OwnerName, st.StartedAt.UTC(), st.CompletedAt.UTC(), int64(st.ExecutionTime),
		int64(st.BillableTime), st.Event, st.InstallationID,
	}
}

func (s *SQL) GetJobStats(ctx context.Context, jobID int64) (*JobStats, error) {
	var st JobStats
	err := s.get(ctx, &st, s.sb.Select(append([]string{"id", "job_id"}, statsColumns...)...).
		From(tJobStats).Where(sqrl.Eq{"job_id": jobID}))
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *SQL) ListJobStatsLabels(ctx context.Context, statsID int64) ([]string, error) {
	var labels []string
	err := s.selectAll(ctx, &labels, s.sb.Select("label").From(tJobStatsLabels).
		Where(sqrl.Eq{"job_stats_id": statsID}).OrderBy("label"))
	return labels, err
}

// UsageByLabel sums execution and billable time per runner label.
func (s *SQL) UsageByLabel(ctx context.Context, f UsageFilter) ([]LabelUsage, error) {
	var out []LabelUsage
	err := s.selectAll(ctx, &out, s.sb.Select(
		"l.label AS label",
		"COUNT(*) AS jobs",
		"COALESCE(CAST(SUM(js.execution_time) AS BIGINT), 0) AS execution_time",
		"COALESCE(CAST(SUM(js.billable_time) AS BIGINT), 0) AS billable_time",
	).
		From(tJobStatsLabels + " l").
		Join(tJobStats + " js ON js.id = l.job_stats_id").
		Where(usageWhere(f)).
		GroupBy("l.label").
		OrderBy("l.label"))
	return out, err
}

func (s *SQL) UsageTotals(ctx context.Context, f UsageFilter) (*UsageTotals, error) {
	var t UsageTotals
	err := s.get(ctx, &t, s.sb.Select(
		"COUNT(*) AS jobs",
		"COALESCE(CAST(SUM(js.execution_time) AS BIGINT), 0) AS execution_time",
		"COALESCE(CAST(SUM(js.billable_time) AS BIGINT), 0) AS billable_time",
	).
		From(tJobStats + " js").
		Where(usageWhere(f)))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func usageWhere(f UsageFilter) sqrl.And {
	where := sqrl.And{}
	if len(f.RepositoryIDs) > 0 {
		where = append(where, sqrl.Eq{"js.repository_id": f.RepositoryIDs})
	}
	if f.Since != nil {
		where = append(where, sqrl.GtOrEq{"js.started_at": f.Since.UTC()})
	}
	if f.Until != nil {
		where = append(where, sqrl.Lt{"js.started_at": f.Until.UTC()})
	}
	return where
}

func txExec(ctx context.Context, tx *sqlx.Tx, b sqrl.Sqlizer) (sql.Result, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return tx.ExecContext(ctx, q, args...)
}
