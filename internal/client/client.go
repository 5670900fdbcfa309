// Package client is the HTTP client for the coach-builder API, used by the
// coach CLI. Calls carry the access code in the x-access-code header; there
// are no timeouts and no automatic retries; a failed call is surfaced and
// retried only when the operator resubmits.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/service"
)

const accessCodeHeader = "x-access-code"

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Request failed (%d)", e.StatusCode)
}

// IsAuthError reports whether the failure should send the operator back to
// login rather than be treated as a bad submission.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Client talks to one coach-builder server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// request performs one JSON round trip and decodes into out when non-nil.
func (c *Client) request(ctx context.Context, method, path, accessCode string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if accessCode != "" {
		req.Header.Set(accessCodeHeader, accessCode)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

// Health probes the server.
func (c *Client) Health(ctx context.Context) error {
	return c.request(ctx, http.MethodGet, "/api/health", "", nil, nil)
}

// Login resolves an access code to a session.
func (c *Client) Login(ctx context.Context, code string) (*domain.Session, error) {
	var session domain.Session
	body := map[string]string{"code": code}
	if err := c.request(ctx, http.MethodPost, "/api/login", "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateWorkoutLog submits a completed plan under the coach's code.
func (c *Client) CreateWorkoutLog(ctx context.Context, accessCode string, req service.CreateLogRequest) (*domain.WorkoutLog, error) {
	var row domain.WorkoutLog
	if err := c.request(ctx, http.MethodPost, "/api/workout-logs", accessCode, req, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// ListWorkoutLogs fetches every row, newest first. Admin sentinel only.
func (c *Client) ListWorkoutLogs(ctx context.Context, accessCode string) ([]domain.WorkoutLog, error) {
	var rows []domain.WorkoutLog
	if err := c.request(ctx, http.MethodGet, "/api/workout-logs", accessCode, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAllWorkoutLogs performs the admin bulk reset.
func (c *Client) DeleteAllWorkoutLogs(ctx context.Context, accessCode string) (int64, error) {
	var resp struct {
		Deleted bool  `json:"deleted"`
		Count   int64 `json:"count"`
	}
	if err := c.request(ctx, http.MethodDelete, "/api/workout-logs", accessCode, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
