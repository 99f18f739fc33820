package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"opticode_backend/internal/feature/analysis/domain/entity"
	"opticode_backend/internal/feature/analysis/usecase"
)

// runRequest is the request body for the pipeline service.
type runRequest struct {
	Code              string `json:"code"`
	OptimizationLevel string `json:"optimization_level"`
}

// Client calls the external optimization pipeline over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements Pipeline.
var _ usecase.Pipeline = (*Client)(nil)

// NewClient creates a new Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Run submits code to the pipeline service and decodes its result.
func (c *Client) Run(ctx context.Context, code, level string) (*entity.PipelineResult, error) {
	body, err := json.Marshal(runRequest{Code: code, OptimizationLevel: level})
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/pipeline/run", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("optimizer http %d", res.StatusCode)
	}

	var result entity.PipelineResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
