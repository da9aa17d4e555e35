package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/actions-insider/webhook-ingest/internal/ingest"
	"github.com/actions-insider/webhook-ingest/internal/store"
)

type fakeReceiver struct {
	id     int64
	err    error
	userID *int64
	body   string
}

func (f *fakeReceiver) Receive(_ context.Context, _ http.Header, body []byte, userID *int64) (int64, error) {
	f.body = string(body)
	f.userID = userID
	return f.id, f.err
}

func TestServer_Webhook(t *testing.T) {
	recv := &fakeReceiver{id: 17}
	var enqueued []int64
	srv := NewServer(":0", nil, recv, func(id int64) { enqueued = append(enqueued, id) }, nil)

	req := httptest.NewRequest(http.MethodPost, "/webhook?user=3", strings.NewReader(`{"action":"completed"}`))
	rec := httptest.NewRecorder()
	srv.handleWebhook(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status want 200 got %d", rec.Code)
	}
	var body map[string]int64
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["id"] != 17 {
		t.Errorf("body.id want 17 got %d", body["id"])
	}
	if recv.userID == nil || *recv.userID != 3 {
		t.Errorf("user id want 3 got %v", recv.userID)
	}
	if recv.body != `{"action":"completed"}` {
		t.Errorf("body want passthrough got %s", recv.body)
	}
	if len(enqueued) != 1 || enqueued[0] != 17 {
		t.Errorf("enqueued want [17] got %v", enqueued)
	}
}

func TestServer_WebhookErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		method string
		err    error
		want   int
	}{
		{"malformed", "/webhook", http.MethodPost, ingest.ErrMalformedBody, http.StatusBadRequest},
		{"missing header", "/webhook", http.MethodPost, fmt.Errorf("%w: X-Github-Event", ingest.ErrMissingHeader), http.StatusBadRequest},
		{"store failure", "/webhook", http.MethodPost, errors.New("db down"), http.StatusInternalServerError},
		{"bad user", "/webhook?user=abc", http.MethodPost, nil, http.StatusBadRequest},
		{"wrong method", "/webhook", http.MethodGet, nil, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enqueued := false
			srv := NewServer(":0", nil, &fakeReceiver{err: tt.err}, func(int64) { enqueued = true }, nil)
			rec := httptest.NewRecorder()
			srv.handleWebhook(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader("{}")))
			if rec.Code != tt.want {
				t.Errorf("status want %d got %d", tt.want, rec.Code)
			}
			if enqueued {
				t.Errorf("rejected delivery must not be enqueued")
			}
		})
	}
}

func TestServer_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	mockStore.EXPECT().Ping(gomock.Any()).Return(nil)

	srv := NewServer(":0", mockStore, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status want 200 got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body.status want ok got %s", body["status"])
	}
}

func TestServer_HealthUnhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	mockStore.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	srv := NewServer(":0", mockStore, nil, nil, nil)
	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status want 503 got %d", rec.Code)
	}
}

func TestServer_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := store.UsageFilter{RepositoryIDs: []int64{10, 11}, Since: &since}

	mockStore.EXPECT().EventCounts(gomock.Any()).Return(&store.EventCounts{Total: 10, Unprocessed: 2}, nil)
	mockStore.EXPECT().UsageTotals(gomock.Any(), filter).Return(&store.UsageTotals{
		Jobs: 3, ExecutionTime: 150 * time.Second, BillableTime: 5 * time.Minute,
	}, nil)
	mockStore.EXPECT().UsageByLabel(gomock.Any(), filter).Return([]store.LabelUsage{
		{Label: "ubuntu-latest", Jobs: 2, ExecutionTime: 90 * time.Second, BillableTime: 3 * time.Minute},
		{Label: "self-hosted", Jobs: 1, ExecutionTime: time.Minute, BillableTime: 2 * time.Minute},
	}, nil)

	srv := NewServer(":0", mockStore, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/stats?repository_id=10&repository_id=11&since=2024-01-01T00:00:00Z", nil)
	rec := httptest.NewRecorder()
	srv.handleStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var body statsView
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Events.Total != 10 || body.Events.Unprocessed != 2 {
		t.Errorf("events want 10/2 got %d/%d", body.Events.Total, body.Events.Unprocessed)
	}
	if body.Totals.BillableMinutes != 5 {
		t.Errorf("totals.billable_minutes want 5 got %v", body.Totals.BillableMinutes)
	}
	if len(body.Labels) != 2 {
		t.Fatalf("labels want 2 got %d", len(body.Labels))
	}
	if math.Abs(body.Labels[0].Cost-0.024) > 1e-9 {
		t.Errorf("ubuntu-latest cost want 0.024 got %v", body.Labels[0].Cost)
	}
	if body.Labels[1].Cost != 0 {
		t.Errorf("self-hosted cost want 0 got %v", body.Labels[1].Cost)
	}
	if math.Abs(body.Totals.Cost-0.024) > 1e-9 {
		t.Errorf("totals.cost want 0.024 got %v", body.Totals.Cost)
	}
}

func TestServer_StatsBadFilter(t *testing.T) {
	srv := NewServer(":0", nil, nil, nil, nil)
	for _, target := range []string{"/stats?repository_id=x", "/stats?since=yesterday", "/stats?until=1"} {
		rec := httptest.NewRecorder()
		srv.handleStats(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status want 400 got %d", target, rec.Code)
		}
	}
}

func TestServer_Metrics(t *testing.T) {
	srv := NewServer(":0", nil, nil, nil, nil)
	rec := httptest.NewRecorder()
	srv.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status want 200 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "insider_") {
		t.Errorf("metrics body want insider_ series")
	}
}
