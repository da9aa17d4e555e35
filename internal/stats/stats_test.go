package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
	"go.uber.org/mock/gomock"

	"github.com/actions-insider/webhook-ingest/internal/store"
)

func i64p(v int64) *int64   { return &v }
func strp(s string) *string { return &s }

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func source(start, end time.Time) *store.JobStatsSource {
	return &store.JobStatsSource{
		JobID:          900,
		JobName:        "build",
		StartedAt:      &start,
		CompletedAt:    &end,
		Labels:         types.JSONText(`["ubuntu-latest","x64"]`),
		WorkflowRunID:  i64p(1),
		Event:          strp("push"),
		WorkflowID:     i64p(7),
		WorkflowName:   strp("CI"),
		RepositoryID:   i64p(10),
		RepositoryName: strp("service"),
		OwnerID:        i64p(2),
		OwnerLogin:     strp("octo-org"),
	}
}

func TestBillable(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, time.Minute},
		{time.Second, time.Minute},
		{60 * time.Second, time.Minute},
		{61 * time.Second, 2 * time.Minute},
		{60*time.Second + 500*time.Millisecond, 2 * time.Minute},
		{2*time.Minute + time.Millisecond, 3 * time.Minute},
		{59*time.Minute + 30*time.Second, time.Hour},
		{2 * time.Hour, 2 * time.Hour},
	}
	for _, tt := range tests {
		if got := Billable(tt.in); got != tt.want {
			t.Errorf("Billable(%s) want %s got %s", tt.in, tt.want, got)
		}
	}
}

func TestComputeDenormalizes(t *testing.T) {
	st, err := Compute(source(t0, t0.Add(90*time.Second)))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if st.JobName != "build" || st.WorkflowName != "CI" || st.RepositoryName != "service" || st.OwnerName != "octo-org" {
		t.Errorf("names not denormalized: %+v", st)
	}
	if st.Event == nil || *st.Event != "push" {
		t.Errorf("event want push got %v", st.Event)
	}
	if st.ExecutionTime != 90*time.Second || st.BillableTime != 2*time.Minute {
		t.Errorf("times want 90s/2m got %s/%s", st.ExecutionTime, st.BillableTime)
	}
}

func TestComputeClampsSmallSkew(t *testing.T) {
	st, err := Compute(source(t0, t0.Add(-1500*time.Millisecond)))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !st.CompletedAt.Equal(t0) {
		t.Errorf("completed_at want clamped to %s got %s", t0, st.CompletedAt)
	}
	if st.ExecutionTime != 0 || st.BillableTime != time.Minute {
		t.Errorf("times want 0/1m got %s/%s", st.ExecutionTime, st.BillableTime)
	}
}

func TestComputeRejectsLargeSkew(t *testing.T) {
	if _, err := Compute(source(t0, t0.Add(-3*time.Second))); !errors.Is(err, ErrClockSkew) {
		t.Errorf("3s skew want ErrClockSkew got %v", err)
	}
	if _, err := Compute(source(t0, t0.Add(-ClockSkewTolerance))); !errors.Is(err, ErrClockSkew) {
		t.Errorf("skew equal to tolerance want ErrClockSkew got %v", err)
	}
}

func TestEligible(t *testing.T) {
	src := source(t0, t0)
	if !Eligible(src) {
		t.Errorf("complete source want eligible")
	}
	src.WorkflowID = nil
	if Eligible(src) {
		t.Errorf("source without workflow want not eligible")
	}
	src = source(t0, t0)
	src.WorkflowRunID = nil
	if Eligible(src) {
		t.Errorf("source without run want not eligible")
	}
	src = source(t0, t0)
	src.CompletedAt = nil
	if Eligible(src) {
		t.Errorf("source without completed_at want not eligible")
	}
}

func TestEngine_Refresh_Saves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)

	mockStore.EXPECT().GetJobStatsSource(gomock.Any(), int64(900)).Return(source(t0, t0.Add(time.Minute)), nil)
	var captured *store.JobStats
	mockStore.EXPECT().SaveJobStats(gomock.Any(), gomock.Any(), []string{"ubuntu-latest", "x64"}).
		DoAndReturn(func(_ context.Context, st *store.JobStats, _ []string) (int64, error) {
			captured = st
			return 1, nil
		})

	ok, err := NewEngine(mockStore).Refresh(context.Background(), 900)
	if err != nil || !ok {
		t.Fatalf("Refresh want true,nil got %v,%v", ok, err)
	}
	if captured.JobID != 900 || captured.WorkflowID != 7 || captured.BillableTime != time.Minute {
		t.Errorf("unexpected row %+v", captured)
	}
}

func TestEngine_Refresh_NotEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)

	src := source(t0, t0)
	src.WorkflowID = nil
	mockStore.EXPECT().GetJobStatsSource(gomock.Any(), int64(900)).Return(src, nil)
	// SaveJobStats must not be called

	ok, err := NewEngine(mockStore).Refresh(context.Background(), 900)
	if err != nil || ok {
		t.Errorf("Refresh want false,nil got %v,%v", ok, err)
	}
}

func TestEngine_Refresh_DuplicatePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)

	mockStore.EXPECT().GetJobStatsSource(gomock.Any(), int64(900)).Return(source(t0, t0), nil)
	mockStore.EXPECT().SaveJobStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), store.ErrDuplicateJobStats)

	_, err := NewEngine(mockStore).Refresh(context.Background(), 900)
	if !errors.Is(err, store.ErrDuplicateJobStats) {
		t.Errorf("want ErrDuplicateJobStats got %v", err)
	}
}

func TestEngine_Refresh_SkewRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)

	mockStore.EXPECT().GetJobStatsSource(gomock.Any(), int64(900)).Return(source(t0, t0.Add(-3*time.Second)), nil)

	if _, err := NewEngine(mockStore).Refresh(context.Background(), 900); !errors.Is(err, ErrClockSkew) {
		t.Errorf("want ErrClockSkew got %v", err)
	}
}
