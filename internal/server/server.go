package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/actions-insider/webhook-ingest/internal/costs"
	"github.com/actions-insider/webhook-ingest/internal/ingest"
	"github.com/actions-insider/webhook-ingest/internal/store"
)

// MaxBodyBytes is the largest delivery accepted, matching GitHub's payload cap.
const MaxBodyBytes = 25 << 20

// Receiver persists one delivery (see ingest.Receiver).
type Receiver interface {
	Receive(ctx context.Context, header http.Header, body []byte, userID *int64) (int64, error)
}

// Server serves /webhook, /health, /stats and /metrics. Depends only on Store and Receiver interfaces.
type Server struct {
	store    store.Store
	receiver Receiver
	enqueue  func(eventID int64)
	rates    *costs.Rates
	http     *http.Server
}

// NewServer returns an HTTP server. enqueue hands a stored event to the workers and must not block.
func NewServer(addr string, s store.Store, r Receiver, enqueue func(eventID int64), rates *costs.Rates) *Server {
	if rates == nil {
		rates = costs.Defaults()
	}
	mux := http.NewServeMux()
	srv := &Server{store: s, receiver: r, enqueue: enqueue, rates: rates}
	mux.HandleFunc("/webhook", srv.handleWebhook)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/stats", srv.handleStats)
	mux.Handle("/metrics", promhttp.Handler())
	srv.http = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	return srv
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Debug("webhook method not allowed", "method", r.Method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var userID *int64
	if v := r.URL.Query().Get("user"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid user", http.StatusBadRequest)
			return
		}
		userID = &n
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.receiver.Receive(r.Context(), r.Header, body, userID)
	switch {
	case errors.Is(err, ingest.ErrMalformedBody), errors.Is(err, ingest.ErrMissingHeader):
		slog.Info("webhook rejected", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		slog.Error("webhook: store event", "err", err)
		http.Error(w, "could not store event", http.StatusInternalServerError)
		return
	}
	if s.enqueue != nil {
		s.enqueue(id)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]int64{"id": id})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Debug("health check method not allowed", "method", r.Method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			slog.Warn("health check failed", "err", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type usageView struct {
	Label            string  `json:"label,omitempty"`
	Jobs             int64   `json:"jobs"`
	ExecutionSeconds float64 `json:"execution_seconds"`
	BillableMinutes  float64 `json:"billable_minutes"`
	Cost             float64 `json:"cost"`
}

type statsView struct {
	Events store.EventCounts `json:"events"`
	Totals usageView         `json:"totals"`
	Labels []usageView       `json:"labels"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Debug("stats method not allowed", "method", r.Method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseUsageFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	counts, err := s.store.EventCounts(r.Context())
	if err != nil {
		slog.Error("stats: event counts", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	totals, err := s.store.UsageTotals(r.Context(), filter)
	if err != nil {
		slog.Error("stats: usage totals", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	byLabel, err := s.store.UsageByLabel(r.Context(), filter)
	if err != nil {
		slog.Error("stats: usage by label", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := statsView{
		Events: *counts,
		Totals: usageView{
			Jobs:             totals.Jobs,
			ExecutionSeconds: totals.ExecutionTime.Seconds(),
			BillableMinutes:  totals.BillableTime.Minutes(),
		},
		Labels: make([]usageView, 0, len(byLabel)),
	}
	for _, u := range byLabel {
		cost := s.rates.Cost(u.BillableTime, []string{u.Label})
		view.Labels = append(view.Labels, usageView{
			Label:            u.Label,
			Jobs:             u.Jobs,
			ExecutionSeconds: u.ExecutionTime.Seconds(),
			BillableMinutes:  u.BillableTime.Minutes(),
			Cost:             cost,
		})
		view.Totals.Cost += cost
	}
	slog.Debug("stats served", "events", counts.Total, "jobs", totals.Jobs)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(view)
}

func parseUsageFilter(r *http.Request) (store.UsageFilter, error) {
	var f store.UsageFilter
	q := r.URL.Query()
	for _, v := range q["repository_id"] {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, fmt.Errorf("invalid repository_id %q", v)
		}
		f.RepositoryIDs = append(f.RepositoryIDs, id)
	}
	var err error
	if f.Since, err = parseTime(q.Get("since")); err != nil {
		return f, fmt.Errorf("invalid since: %w", err)
	}
	if f.Until, err = parseTime(q.Get("until")); err != nil {
		return f, fmt.Errorf("invalid until: %w", err)
	}
	return f, nil
}

func parseTime(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
