// Package anthropic is a minimal client for the Anthropic Messages API,
// covering the single capability this service needs: one completion with a
// web-search tool attached.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const apiVersion = "2023-06-01"

// ErrNotConfigured is returned before any network I/O when no usable API
// credential is present.
var ErrNotConfigured = errors.New("Anthropic API key not configured. Please add ANTHROPIC_API_KEY to .env file")

// ContentBlock is one segment of a Messages API reply. Only text-typed
// segments carry a payload this service consumes; tool-use blocks are kept so
// callers can skip them by type.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Tool declares a server-side tool the model may invoke.
type Tool struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// WebSearchTool grounds replies in live data.
var WebSearchTool = Tool{Type: "web_search_20250305", Name: "web_search"}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Tools     []Tool    `json:"tools,omitempty"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content []ContentBlock `json:"content"`
}

// Options configure a Client.
type Options struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	// Configured is false when the key is absent or a placeholder; Complete
	// then fails fast without touching the network.
	Configured bool
}

// Client performs Messages API calls over plain HTTP.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// NewClient builds a client. A nil httpClient falls back to
// http.DefaultClient, leaving timeouts to the transport defaults.
func NewClient(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, opts: opts}
}

// Complete sends one user message with the web-search tool attached and
// returns the reply's content segments.
func (c *Client) Complete(ctx context.Context, prompt string) ([]ContentBlock, error) {
	if !c.opts.Configured {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.opts.Model,
		MaxTokens: c.opts.MaxTokens,
		Tools:     []Tool{WebSearchTool},
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create messages request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.opts.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read anthropic response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("anthropic error (status %d): %s", resp.StatusCode, raw)
	}

	var out messagesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("could not decode anthropic response: %w", err)
	}
	return out.Content, nil
}
