// Package api provides the HTTP client for the Voice AI Platform backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Kart8ik/Voice-AI-Platform/internal/config"
	"github.com/Kart8ik/Voice-AI-Platform/internal/logger"
	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
)

// Backend endpoints, relative to the configured base URL.
const (
	callsPath      = "/api/analytics/calls"
	summaryPath    = "/api/analytics/summary"
	assistantsPath = "/api/assistants"
)

// Client talks to the backend analytics and assistants APIs.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client from the application configuration.
func New(cfg *config.Config) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

// GetCalls fetches the aggregated call report for the backend's default window.
func (c *Client) GetCalls(ctx context.Context) (*models.CallAnalytics, error) {
	var analytics models.CallAnalytics
	if err := c.get(ctx, callsPath, nil, &analytics); err != nil {
		return nil, fmt.Errorf("failed to fetch call analytics: %w", err)
	}
	return &analytics, nil
}

// GetSummary fetches the per-day summary for the given trailing day count.
func (c *Client) GetSummary(ctx context.Context, days int) (*models.PeriodSummary, error) {
	query := url.Values{}
	query.Set("days", strconv.Itoa(days))

	var summary models.PeriodSummary
	if err := c.get(ctx, summaryPath, query, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch period summary: %w", err)
	}
	return &summary, nil
}

// ListAssistants fetches the assistant roster.
func (c *Client) ListAssistants(ctx context.Context) ([]models.Assistant, error) {
	var assistants []models.Assistant
	if err := c.get(ctx, assistantsPath, nil, &assistants); err != nil {
		return nil, fmt.Errorf("failed to fetch assistants: %w", err)
	}
	return assistants, nil
}

// get issues a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
