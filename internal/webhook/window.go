package webhook

import (
	"fmt"
	"time"
)

// JobWindow returns the tightest started/completed bounds across the job's own timestamps and
// the timestamps of its steps. Both job-level timestamps are required.
func JobWindow(job *Job) (startedAt, completedAt time.Time, err error) {
	if job.StartedAt == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: job %d has no started_at", ErrInvalidPayload, job.ID)
	}
	if job.CompletedAt == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: job %d has no completed_at", ErrInvalidPayload, job.ID)
	}
	startedAt, completedAt = *job.StartedAt, *job.CompletedAt
	for _, step := range job.Steps {
		if step.StartedAt != nil && step.StartedAt.Before(startedAt) {
			startedAt = *step.StartedAt
		}
		if step.CompletedAt != nil && step.CompletedAt.After(completedAt) {
			completedAt = *step.CompletedAt
		}
	}
	return startedAt, completedAt, nil
}
