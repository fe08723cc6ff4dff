package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/stats"
)

// ErrUnexpectedStatus is returned when the server answers with an
// unexpected HTTP status.
var ErrUnexpectedStatus = errors.New("unexpected status")

const headerSessionID = "X-Session-ID"

// Client talks to the tagging API on behalf of one session.
type Client struct {
	http    *http.Client
	baseURL string
	session string
}

// NewClient returns a client bound to session.
func NewClient(hc *http.Client, baseURL, session string) *Client {
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/"), session: session}
}

// Health checks the service is up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, http.StatusOK, nil)
}

// StartStopwatch starts the session stopwatch.
func (c *Client) StartStopwatch(ctx context.Context) (model.StopwatchStatus, error) {
	var st model.StopwatchStatus
	err := c.do(ctx, http.MethodPost, "/api/stopwatch/start", nil, http.StatusOK, &st)
	return st, err
}

// StopStopwatch stops the session stopwatch.
func (c *Client) StopStopwatch(ctx context.Context) (model.StopwatchStatus, error) {
	var st model.StopwatchStatus
	err := c.do(ctx, http.MethodPost, "/api/stopwatch/stop", nil, http.StatusOK, &st)
	return st, err
}

// CreateEvent tags one event.
func (c *Client) CreateEvent(ctx context.Context, in model.EventInput) (model.Event, error) {
	var ev model.Event
	err := c.do(ctx, http.MethodPost, "/api/events", in, http.StatusCreated, &ev)
	return ev, err
}

// ListEvents returns the session ledger.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := c.do(ctx, http.MethodGet, "/api/events", nil, http.StatusOK, &events)
	return events, err
}

// TeamStats returns per-team statistics.
func (c *Client) TeamStats(ctx context.Context) ([]stats.TeamStats, error) {
	var out []stats.TeamStats
	err := c.do(ctx, http.MethodGet, "/api/events/stats", nil, http.StatusOK, &out)
	return out, err
}

// ExportZIP downloads the CSV and XML bundle.
func (c *Client) ExportZIP(ctx context.Context, base string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodPost, "/api/export/zip?filename="+base, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return data, nil
}

// DeleteSession drops the session.
func (c *Client) DeleteSession(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/sessions/"+c.session, nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, want int, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerSessionID, c.session)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: %s %s: %d %s", ErrUnexpectedStatus,
		resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, strings.TrimSpace(string(msg)))
}
