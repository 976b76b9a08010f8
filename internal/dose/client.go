package dose

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks HTTP+JSON to the reminder backend. Every call is a single
// attempt; there is no retry or caching. A zero BaseURL means same-origin
// relative paths are not resolvable, so callers normally configure one.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ Service = (*Client)(nil)

// NewClient returns a client for the given base URL with a conservative
// transport timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/") + path
}

// FetchDueToday returns the medications due now for the user. An empty
// list is a valid result, not an error.
func (c *Client) FetchDueToday(ctx context.Context, userID string) ([]DueItem, error) {
	var out struct {
		Items []DueItem `json:"items"`
	}
	path := "/api/today/" + url.PathEscape(userID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("fetch due today: %w", err)
	}
	return out.Items, nil
}

// RecordTake records the item as taken. The response body is ignored;
// callers reconcile by re-fetching the due list.
func (c *Client) RecordTake(ctx context.Context, req ActionRequest) error {
	req.Minutes = 0
	if err := c.postJSON(ctx, "/api/take", req, nil); err != nil {
		return fmt.Errorf("record take: %w", err)
	}
	return nil
}

// RecordSnooze defers the item by req.Minutes. The response body is
// ignored; callers reconcile by re-fetching the due list.
func (c *Client) RecordSnooze(ctx context.Context, req ActionRequest) error {
	if err := c.postJSON(ctx, "/api/snooze", req, nil); err != nil {
		return fmt.Errorf("record snooze: %w", err)
	}
	return nil
}

// SubmitVoiceCommand sends a recognized transcript and returns the
// backend's spoken reply.
func (c *Client) SubmitVoiceCommand(ctx context.Context, text, userID string) (string, error) {
	body := struct {
		Text   string `json:"text"`
		UserID string `json:"user_id"`
	}{Text: text, UserID: userID}

	var out struct {
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, "/api/voice", body, &out); err != nil {
		return "", fmt.Errorf("submit voice command: %w", err)
	}
	return out.Response, nil
}

// FetchCompliance returns the per-day adherence calendar for the user.
func (c *Client) FetchCompliance(ctx context.Context, userID string) ([]ComplianceDay, error) {
	var out struct {
		Calendar []ComplianceDay `json:"calendar"`
	}
	path := "/api/caregiver/compliance/" + url.PathEscape(userID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("fetch compliance: %w", err)
	}
	return out.Calendar, nil
}

// CreateMedication registers a new medication and schedule.
func (c *Client) CreateMedication(ctx context.Context, med NewMedication) error {
	if err := c.postJSON(ctx, "/api/medications", med, nil); err != nil {
		return fmt.Errorf("create medication: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
