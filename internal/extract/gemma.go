package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spindlewrit/spindlewrit/internal/taskstore"
)

// Defaults for the live client.
const (
	DefaultBaseURL      = "https://api.gemma.ai/v1"
	DefaultModel        = "gemma-7b-it"
	DefaultTaskstoreURL = "http://localhost:8000"
)

// Config holds the settings for the live Gemma client. Values arrive from the
// process boundary (flags, env, config file); the client performs no
// environment reads of its own.
type Config struct {
	APIKey       string
	BaseURL      string
	Model        string
	TaskstoreURL string
}

// GemmaClient implements Client against a live chat-completions endpoint.
type GemmaClient struct {
	cfg        Config
	tasks      *taskstore.Client
	httpClient *http.Client
}

// NewGemmaClient creates a live client, filling unset config fields with
// defaults.
func NewGemmaClient(cfg Config) *GemmaClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.TaskstoreURL == "" {
		cfg.TaskstoreURL = DefaultTaskstoreURL
	}
	return &GemmaClient{
		cfg:        cfg,
		tasks:      taskstore.NewClient(cfg.TaskstoreURL),
		httpClient: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type toolDecl struct {
	Type     string         `json:"type"`
	Function map[string]any `json:"function"`
}

type toolChoice struct {
	Type     string            `json:"type"`
	Function map[string]string `json:"function"`
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []toolDecl    `json:"tools"`
	ToolChoice toolChoice    `json:"tool_choice"`
}

// functionCall is the envelope the endpoint returns for a forced tool call.
// Arguments holds a JSON-encoded object; the pointer distinguishes an absent
// field from a present-but-empty string.
type functionCall struct {
	Name      string  `json:"name"`
	Arguments *string `json:"arguments"`
}

type chatResponse struct {
	FunctionCall *functionCall `json:"function_call"`
}

// GenerateFromTask fetches the task, asks the model for structured project
// details, and returns the decoded function-call arguments as-is.
func (c *GemmaClient) GenerateFromTask(ctx context.Context, taskID string) (map[string]any, error) {
	task, err := c.tasks.Fetch(ctx, taskID)
	if err != nil {
		return nil, err
	}

	resp, err := c.callFunction(ctx, buildPrompt(task))
	if err != nil {
		return nil, err
	}
	return decodeFunctionCall(resp)
}

func (c *GemmaClient) callFunction(ctx context.Context, prompt string) (*chatResponse, error) {
	payload := chatRequest{
		Model:      c.cfg.Model,
		Messages:   []chatMessage{{Role: "user", Content: prompt}},
		Tools:      []toolDecl{{Type: "function", Function: functionSchema()}},
		ToolChoice: toolChoice{Type: "function", Function: map[string]string{"name": functionName}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("Failed to call Gemma API: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("Failed to call Gemma API: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to call Gemma API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Failed to call Gemma API: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("Failed to call Gemma API: status %d: %s", resp.StatusCode, data)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("Failed to call Gemma API: %w", err)
	}
	return &parsed, nil
}

// decodeFunctionCall validates the response envelope and decodes the embedded
// arguments. The two failure modes stay distinct so callers can tell a
// missing envelope from malformed arguments.
func decodeFunctionCall(resp *chatResponse) (map[string]any, error) {
	if resp.FunctionCall == nil || resp.FunctionCall.Arguments == nil {
		return nil, errors.New("Failed to get function call response from Gemma")
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(*resp.FunctionCall.Arguments), &args); err != nil {
		return nil, errors.New("Invalid JSON response from Gemma function call")
	}
	return args, nil
}
