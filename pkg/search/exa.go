package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const exaEndpoint = "https://api.exa.ai/search"

type Result struct {
	Title string
	URL   string
}

type Client interface {
	Search(ctx context.Context, query string, numResults int) ([]Result, error)
}

type ExaClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewExaClient(apiKey string) *ExaClient {
	return &ExaClient{
		apiKey:     apiKey,
		endpoint:   exaEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ExaClient) Search(ctx context.Context, query string, numResults int) ([]Result, error) {
	body, err := json.Marshal(exaRequest{Query: query, NumResults: numResults})
	if err != nil {
		return nil, fmt.Errorf("exa search: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("exa search: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exa search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exa search: status %d", resp.StatusCode)
	}

	var raw exaResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("exa decode: %w", err)
	}

	results := make([]Result, 0, len(raw.Results))
	for _, item := range raw.Results {
		url := item.URL
		if url == "" {
			url = item.Link
		}
		results = append(results, Result{Title: item.Title, URL: url})
	}

	return results, nil
}

type exaRequest struct {
	Query      string `json:"query"`
	NumResults int    `json:"numResults"`
}

type exaResponse struct {
	Results []exaResult `json:"results"`
}

type exaResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Link  string `json:"link"`
}
