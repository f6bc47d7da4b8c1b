package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jwib1009/family-activity-demo/internal/dto"
	"github.com/jwib1009/family-activity-demo/internal/entity"
)

// Searcher is the API capability the ui consumes.
type Searcher interface {
	SearchActivities(ctx context.Context, criteria dto.SearchCriteria) ([]entity.Activity, error)
}

// APIClient calls the recommendation endpoint over HTTP, the same path a
// browser client takes.
type APIClient struct {
	client  *http.Client
	baseURL string
}

// NewAPIClient builds the client against the API base URL.
func NewAPIClient(client *http.Client, baseURL string) *APIClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &APIClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// SearchActivities posts the criteria and decodes the activity list. Error
// bodies are surfaced through their message field so the error panel shows
// what the server reported.
func (c *APIClient) SearchActivities(ctx context.Context, criteria dto.SearchCriteria) ([]entity.Activity, error) {
	body, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal criteria: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/search-activities", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody dto.ServerErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			return nil, errors.New(errBody.Message)
		}
		return nil, errors.New("Failed to fetch activities")
	}

	var activities []entity.Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("could not decode activities: %w", err)
	}
	return activities, nil
}

var _ Searcher = (*APIClient)(nil)
