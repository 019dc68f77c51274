// Package generation talks to an Ollama-compatible text-generation service.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/studydesk/go-services/pkg/metrics"
)

// ErrUnavailable is wrapped by every failure to obtain a complete response
// from the generation service (network error or non-success status).
var ErrUnavailable = errors.New("generation service unavailable")

// Generator produces text for a single prompt. Kind labels the call for
// metrics only ("summarize", "translate", "quiz", "test_plan").
type Generator interface {
	Generate(ctx context.Context, kind, prompt string) (string, error)
}

// Client calls POST <baseURL>/api/generate with stream=false and waits for
// the complete response. It never retries.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

// NewClient creates a client for the given endpoint and model. A zero
// timeout leaves the transport default (no overall deadline) in place.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3:8b"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

// Model returns the model name sent with each request.
func (c *Client) Model() string { return c.model }

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends prompt to the configured model and returns the trimmed response text.
func (c *Client) Generate(ctx context.Context, kind, prompt string) (string, error) {
	start := time.Now()
	out, err := c.generate(ctx, prompt)
	metrics.GenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.GenerationRequests.WithLabelValues(kind, outcome).Inc()
	return out, err
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return strings.TrimSpace(out.Response), nil
}
