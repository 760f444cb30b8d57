// Package taskstore fetches task records from the external task-tracking
// service.
package taskstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// Client talks to the task store's read API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the task store at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Fetch retrieves a single task record. Transport errors and non-2xx statuses
// are wrapped; a fetched-but-empty record is reported as not found.
func (c *Client) Fetch(ctx context.Context, id string) (*project.TaskRecord, error) {
	url := fmt.Sprintf("%s/api/tasks/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch todo: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch todo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch todo: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Failed to fetch todo: status %d: %s", resp.StatusCode, data)
	}

	var record project.TaskRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("Failed to fetch todo: %w", err)
	}
	if record.ID == "" && record.Description == "" {
		return nil, fmt.Errorf("Todo item with ID %s not found", id)
	}
	return &record, nil
}
