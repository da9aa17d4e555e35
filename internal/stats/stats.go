package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/actions-insider/webhook-ingest/internal/metrics"
	"github.com/actions-insider/webhook-ingest/internal/store"
)

// ClockSkewTolerance is the largest completed-before-started gap that is clamped instead of rejected.
const ClockSkewTolerance = 2 * time.Second

// ErrClockSkew rejects a job whose completion precedes its start by ClockSkewTolerance or more.
var ErrClockSkew = errors.New("stats: completed_at precedes started_at beyond tolerance")

// Compute builds the statistics row for an eligible source. The caller checks eligibility.
func Compute(src *store.JobStatsSource) (*store.JobStats, error) {
	st := &store.JobStats{
		JobID:          src.JobID,
		JobName:        src.JobName,
		WorkflowRunID:  *src.WorkflowRunID,
		WorkflowID:     *src.WorkflowID,
		Event:          src.Event,
		InstallationID: src.InstallationID,
		StartedAt:      *src.StartedAt,
		CompletedAt:    *src.CompletedAt,
	}
	if src.WorkflowName != nil {
		st.WorkflowName = *src.WorkflowName
	}
	if src.RepositoryID != nil {
		st.RepositoryID = *src.RepositoryID
	}
	if src.RepositoryName != nil {
		st.RepositoryName = *src.RepositoryName
	}
	if src.OwnerID != nil {
		st.OwnerID = *src.OwnerID
	}
	if src.OwnerLogin != nil {
		st.OwnerName = *src.OwnerLogin
	}

	if st.CompletedAt.Before(st.StartedAt) {
		gap := st.StartedAt.Sub(st.CompletedAt)
		if gap >= ClockSkewTolerance {
			return nil, fmt.Errorf("%w: job %d completed %s before it started", ErrClockSkew, src.JobID, gap)
		}
		st.CompletedAt = st.StartedAt
	}
	st.ExecutionTime = st.CompletedAt.Sub(st.StartedAt)
	st.BillableTime = Billable(st.ExecutionTime)
	return st, nil
}

// Billable rounds d up to whole minutes with a one minute minimum.
func Billable(d time.Duration) time.Duration {
	minutes := (d + time.Minute - 1) / time.Minute
	if minutes < 1 {
		minutes = 1
	}
	return minutes * time.Minute
}

// Eligible reports whether src has everything a statistics row needs.
func Eligible(src *store.JobStatsSource) bool {
	return src.WorkflowRunID != nil && src.WorkflowID != nil && src.StartedAt != nil && src.CompletedAt != nil
}

// Engine refreshes job statistics from the current job, run and workflow rows.
type Engine struct {
	store store.Store
	log   *slog.Logger
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s, log: slog.Default()}
}

// Refresh recomputes the statistics row of jobID. It returns false without error when the job is
// not eligible yet. Labels are only ever added.
func (e *Engine) Refresh(ctx context.Context, jobID int64) (bool, error) {
	src, err := e.store.GetJobStatsSource(ctx, jobID)
	if err != nil {
		return false, fmt.Errorf("load job %d: %w", jobID, err)
	}
	if !Eligible(src) {
		e.log.Debug("job not eligible for stats", "job_id", jobID)
		return false, nil
	}
	st, err := Compute(src)
	if err != nil {
		return false, err
	}
	if _, err := e.store.SaveJobStats(ctx, st, src.LabelList()); err != nil {
		return false, fmt.Errorf("save job stats %d: %w", jobID, err)
	}
	metrics.JobStatsWritten.Inc()
	return true, nil
}
