package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("tok")
	c.BaseURL = srv.URL
	c.RetryInterval = time.Millisecond
	return c
}

func TestListWorkflowRunsFollowsPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "token tok" {
			t.Errorf("Authorization want token tok got %q", got)
		}
		switch r.URL.Query().Get("page") {
		case "":
			if r.URL.Query().Get("created") == "" {
				t.Errorf("created filter missing")
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/o/r/actions/runs?page=2>; rel="next", <%s/x>; rel="last"`, srv.URL, srv.URL))
			fmt.Fprint(w, `{"total_count": 2, "workflow_runs": [{"id": 1, "run_attempt": 2, "url": "u1"}]}`)
		case "2":
			fmt.Fprint(w, `{"total_count": 2, "workflow_runs": [{"id": 2, "run_attempt": 1, "url": "u2"}]}`)
		}
	}))
	defer srv.Close()

	runs, err := newTestClient(srv).ListWorkflowRuns(context.Background(), "o", "r", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("ListWorkflowRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs want 2 got %d", len(runs))
	}
	if runs[0].RunAttempt != 2 || runs[1].ID != 2 {
		t.Errorf("unexpected runs %+v", runs)
	}
	if len(runs[0].Raw) == 0 {
		t.Errorf("raw payload not kept")
	}
}

func TestGetRunAttemptPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/o/r/actions/runs/5/attempts/3" {
			t.Errorf("path want attempts/3 got %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"id": 5, "run_attempt": 3, "status": "completed"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	run, err := c.GetRunAttempt(context.Background(), srv.URL+"/repos/o/r/actions/runs/5", 3)
	if err != nil {
		t.Fatalf("GetRunAttempt: %v", err)
	}
	if run.RunAttempt != 3 || run.Status != "completed" {
		t.Errorf("unexpected run %+v", run)
	}
}

func TestRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GetOrganization(context.Background(), "octo-org")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("want ErrRateLimited got %v", err)
	}
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GetWorkflow(context.Background(), srv.URL+"/repos/o/r/actions/workflows/1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound got %v", err)
	}
}

func TestServerErrorRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"jobs": [{"id": 9, "status": "completed"}]}`)
	}))
	defer srv.Close()

	jobs, err := newTestClient(srv).ListJobs(context.Background(), srv.URL+"/jobs")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != 9 {
		t.Errorf("unexpected jobs %+v", jobs)
	}
	if calls.Load() != 3 {
		t.Errorf("calls want 3 got %d", calls.Load())
	}
}

func TestServerErrorGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := c.GetOrganization(context.Background(), "o"); err == nil {
		t.Fatalf("want error")
	}
	if got := calls.Load(); got != int32(c.MaxRetries)+1 {
		t.Errorf("calls want %d got %d", c.MaxRetries+1, got)
	}
}

func TestListOrgRepositoriesLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("sort") != "pushed" || q.Get("direction") != "desc" || q.Get("per_page") != "2" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `[{"id": 1, "name": "a", "owner": {"id": 7, "login": "o"}}, {"id": 2, "name": "b"}, {"id": 3, "name": "c"}]`)
	}))
	defer srv.Close()

	repos, err := newTestClient(srv).ListOrgRepositories(context.Background(), "o", 2)
	if err != nil {
		t.Fatalf("ListOrgRepositories: %v", err)
	}
	if len(repos) != 2 || repos[0].Owner.Login != "o" {
		t.Errorf("unexpected repos %+v", repos)
	}
}

func TestWithTokenCopies(t *testing.T) {
	c := NewClient("a")
	d := c.WithToken("b")
	if c.token != "a" || d.token != "b" {
		t.Errorf("tokens want a/b got %s/%s", c.token, d.token)
	}
}
