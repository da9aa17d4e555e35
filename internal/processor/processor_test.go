package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
	"go.uber.org/mock/gomock"

	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

const completedRun = `{
	"action": "completed",
	"workflow_run": {"id": 100, "run_attempt": 1, "repository": {"id": 10, "name": "service", "owner": {"id": 2, "login": "o"}}}
}`

const completedJob = `{
	"action": "completed",
	"workflow_job": {"id": 900, "run_id": 100, "run_attempt": 1, "name": "build",
		"started_at": "2024-01-01T10:00:00Z", "completed_at": "2024-01-01T10:01:00Z"},
	"repository": {"id": 10, "name": "service", "owner": {"id": 2, "login": "o"}}
}`

type fakeHandler struct {
	runs, jobs int
	err        error
	delivery   webhook.Delivery
}

func (h *fakeHandler) HandleRun(_ context.Context, d webhook.Delivery, _ webhook.RunCompleted) error {
	h.runs++
	h.delivery = d
	return h.err
}

func (h *fakeHandler) HandleJob(_ context.Context, d webhook.Delivery, _ webhook.JobCompleted) error {
	h.jobs++
	h.delivery = d
	return h.err
}

func event(id int64, kind, body string) *store.WebhookEvent {
	inst := int64(5)
	return &store.WebhookEvent{ID: id, Event: kind, Payload: types.JSONText(body), HookID: 1, InstallationID: &inst}
}

func TestProcess_RunSuccessStampsProcessedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	h := &fakeHandler{}

	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(1)).Return(event(1, "workflow_run", completedRun), nil)
	mockStore.EXPECT().MarkEventProcessed(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	if got := NewProcessor(mockStore, h).Process(context.Background(), 1); got != ResultSuccess {
		t.Errorf("result want success got %s", got)
	}
	if h.runs != 1 || h.jobs != 0 {
		t.Errorf("handler calls want run=1 job=0 got run=%d job=%d", h.runs, h.jobs)
	}
	if h.delivery.InstallationID == nil || *h.delivery.InstallationID != 5 {
		t.Errorf("installation not passed to handler")
	}
}

func TestProcess_JobDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	h := &fakeHandler{}

	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(2)).Return(event(2, "workflow_job", completedJob), nil)
	mockStore.EXPECT().MarkEventProcessed(gomock.Any(), int64(2), gomock.Any()).Return(nil)

	if got := NewProcessor(mockStore, h).Process(context.Background(), 2); got != ResultSuccess {
		t.Errorf("result want success got %s", got)
	}
	if h.jobs != 1 {
		t.Errorf("job handler calls want 1 got %d", h.jobs)
	}
}

func TestProcess_NonProcessableDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	h := &fakeHandler{}

	body := `{"action": "requested", "workflow_run": {"id": 100, "run_attempt": 1}}`
	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(3)).Return(event(3, "workflow_run", body), nil)
	mockStore.EXPECT().DeleteWebhookEvent(gomock.Any(), int64(3)).Return(nil)
	// MarkEventProcessed must not be called

	if got := NewProcessor(mockStore, h).Process(context.Background(), 3); got != ResultNoop {
		t.Errorf("result want noop got %s", got)
	}
	if h.runs != 0 {
		t.Errorf("handler must not run for non-processable events")
	}
}

func TestProcess_FailureLeavesUnprocessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	h := &fakeHandler{err: errors.New("boom")}

	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(4)).Return(event(4, "workflow_job", completedJob), nil)

	if got := NewProcessor(mockStore, h).Process(context.Background(), 4); got != ResultFailure {
		t.Errorf("result want failure got %s", got)
	}
}

func TestProcess_InvalidPayloadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)

	body := `{"action": "completed", "workflow_job": {"id": 1, "run_id": 2, "run_attempt": 1, "name": "x"}}`
	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(5)).Return(event(5, "workflow_job", body), nil)

	if got := NewProcessor(mockStore, &fakeHandler{}).Process(context.Background(), 5); got != ResultFailure {
		t.Errorf("result want failure got %s", got)
	}
}

func TestProcess_DuplicateStatsIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	h := &fakeHandler{err: store.ErrDuplicateJobStats}

	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(6)).Return(event(6, "workflow_job", completedJob), nil)

	if got := NewProcessor(mockStore, h).Process(context.Background(), 6); got != ResultNoop {
		t.Errorf("result want noop got %s", got)
	}
}

func TestProcess_MissingEventIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)

	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(7)).Return(nil, store.ErrNotFound)

	if got := NewProcessor(mockStore, &fakeHandler{}).Process(context.Background(), 7); got != ResultNoop {
		t.Errorf("result want noop got %s", got)
	}
}

func TestSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	before := time.Now()

	mockStore.EXPECT().ListUnprocessedEvents(gomock.Any(), before, 10000).Return([]int64{1, 3}, nil)
	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(1)).Return(event(1, "workflow_run", completedRun), nil)
	mockStore.EXPECT().MarkEventProcessed(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	mockStore.EXPECT().GetWebhookEvent(gomock.Any(), int64(3)).Return(event(3, "push", `{}`), nil)
	mockStore.EXPECT().DeleteWebhookEvent(gomock.Any(), int64(3)).Return(nil)

	summary, err := NewProcessor(mockStore, &fakeHandler{}).Sweep(context.Background(), before, 10000)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if summary.Success != 1 || summary.Noop != 1 || summary.Failure != 0 {
		t.Errorf("summary want 1/0/1 got %+v", summary)
	}
}
