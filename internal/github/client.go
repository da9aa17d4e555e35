package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const defaultBaseURL = "https://api.github.com"

var (
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited")
)

var nextLinkRE = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// Client is a token-scoped GitHub REST client.
// BaseURL is optional; when set (e.g. in tests) it replaces the default API host.
type Client struct {
	httpClient *http.Client
	token      string
	BaseURL    string
	// RetryInterval is the first wait before retrying a 5xx response.
	RetryInterval time.Duration
	MaxRetries    uint64
	log           *slog.Logger
}

// NewClient returns a GitHub API client. token is optional (PAT for higher rate limits).
func NewClient(token string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		token:         token,
		RetryInterval: time.Second,
		MaxRetries:    3,
		log:           slog.Default(),
	}
}

// WithToken returns a copy of c authenticating with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) apiURL(path string) string {
	base := defaultBaseURL
	if c.BaseURL != "" {
		base = strings.TrimSuffix(c.BaseURL, "/")
	}
	return base + path
}

// GetOrganization fetches an organization account.
func (c *Client) GetOrganization(ctx context.Context, login string) (*Account, error) {
	var acc Account
	raw, _, err := c.get(ctx, c.apiURL("/orgs/"+url.PathEscape(login)))
	if err != nil {
		return nil, err
	}
	if acc.Raw, err = decodeRaw(raw, &acc); err != nil {
		return nil, fmt.Errorf("decode organization: %w", err)
	}
	return &acc, nil
}

// ListOrgRepositories returns up to limit repositories of org, most recently pushed first.
func (c *Client) ListOrgRepositories(ctx context.Context, org string, limit int) ([]Repository, error) {
	q := url.Values{}
	q.Set("sort", "pushed")
	q.Set("direction", "desc")
	q.Set("per_page", strconv.Itoa(limit))
	raw, _, err := c.get(ctx, c.apiURL("/orgs/"+url.PathEscape(org)+"/repos?"+q.Encode()))
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode repositories: %w", err)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	repos := make([]Repository, 0, len(items))
	for _, item := range items {
		var r Repository
		if r.Raw, err = decodeRaw(item, &r); err != nil {
			return nil, fmt.Errorf("decode repository: %w", err)
		}
		repos = append(repos, r)
	}
	return repos, nil
}

// ListWorkflowRuns returns every run of owner/repo created at or after since, following pagination.
func (c *Client) ListWorkflowRuns(ctx context.Context, owner, repo string, since time.Time) ([]Run, error) {
	q := url.Values{}
	q.Set("created", ">="+since.UTC().Format(time.RFC3339))
	q.Set("per_page", "100")
	items, err := c.list(ctx, c.apiURL("/repos/"+url.PathEscape(owner)+"/"+url.PathEscape(repo)+"/actions/runs?"+q.Encode()), "workflow_runs")
	if err != nil {
		return nil, err
	}
	runs := make([]Run, 0, len(items))
	for _, item := range items {
		var r Run
		if r.Raw, err = decodeRaw(item, &r); err != nil {
			return nil, fmt.Errorf("decode run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, nil
}

// GetRunAttempt fetches attempt n of the run at runURL.
func (c *Client) GetRunAttempt(ctx context.Context, runURL string, n int64) (*Run, error) {
	raw, _, err := c.get(ctx, strings.TrimSuffix(runURL, "/")+"/attempts/"+strconv.FormatInt(n, 10))
	if err != nil {
		return nil, err
	}
	var r Run
	if r.Raw, err = decodeRaw(raw, &r); err != nil {
		return nil, fmt.Errorf("decode run attempt: %w", err)
	}
	return &r, nil
}

// GetWorkflow fetches the workflow at workflowURL.
func (c *Client) GetWorkflow(ctx context.Context, workflowURL string) (*Workflow, error) {
	raw, _, err := c.get(ctx, workflowURL)
	if err != nil {
		return nil, err
	}
	var w Workflow
	if w.Raw, err = decodeRaw(raw, &w); err != nil {
		return nil, fmt.Errorf("decode workflow: %w", err)
	}
	return &w, nil
}

// ListJobs returns every job listed at jobsURL, following pagination.
func (c *Client) ListJobs(ctx context.Context, jobsURL string) ([]Job, error) {
	items, err := c.list(ctx, jobsURL, "jobs")
	if err != nil {
		return nil, err
	}
	jobs := make([]Job, 0, len(items))
	for _, item := range items {
		var j Job
		if j.Raw, err = decodeRaw(item, &j); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// list follows rel="next" links and collects the array stored under key on every page.
func (c *Client) list(ctx context.Context, first, key string) ([]json.RawMessage, error) {
	var out []json.RawMessage
	for next := first; next != ""; {
		raw, header, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}
		var page map[string]json.RawMessage
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		var items []json.RawMessage
		if v, ok := page[key]; ok {
			if err := json.Unmarshal(v, &items); err != nil {
				return nil, fmt.Errorf("decode %s: %w", key, err)
			}
		}
		out = append(out, items...)
		next = nextLink(header.Get("Link"))
	}
	return out, nil
}

func nextLink(link string) string {
	m := nextLinkRE.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// get performs one GET, retrying 5xx responses with exponential back-off.
// ErrNotFound and ErrRateLimited are returned without retrying.
func (c *Client) get(ctx context.Context, target string) ([]byte, http.Header, error) {
	var (
		body   []byte
		header http.Header
	)
	op := func() error {
		b, h, err := c.do(ctx, target)
		if err != nil {
			return err
		}
		body, header = b, h
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.RetryInterval
	b.MaxElapsedTime = 0
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, c.MaxRetries), ctx))
	if err != nil {
		return nil, nil, err
	}
	return body, header, nil
}

type serverError struct{ status string }

func (e *serverError) Error() string { return "github API: " + e.status }

func (c *Client) do(ctx context.Context, target string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, backoff.Permanent(err)
	}
	c.setAuth(req)
	req.Header.Set("Accept", "application/vnd.github+json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, backoff.Permanent(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, nil, backoff.Permanent(err)
		}
		return body, resp.Header, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil, backoff.Permanent(ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		c.log.Info("rate limited", "url", target, "reset", resp.Header.Get("X-RateLimit-Reset"))
		return nil, nil, backoff.Permanent(ErrRateLimited)
	case resp.StatusCode >= 500:
		c.log.Debug("server error, retrying", "url", target, "status", resp.StatusCode)
		return nil, nil, &serverError{status: resp.Status}
	default:
		return nil, nil, backoff.Permanent(fmt.Errorf("github API %s: %s", target, resp.Status))
	}
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
}
