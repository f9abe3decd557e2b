package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GemmaClient talks to a self-hosted Gemma gateway that exposes a plain
// JSON /generate endpoint.
type GemmaClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGemmaClient(apiKey, baseURL, model string, timeout time.Duration) (*GemmaClient, error) {
	if apiKey == "" {
		return nil, errors.New("Gemma API key is required but not provided")
	}
	if baseURL == "" {
		return nil, errors.New("Gemma base URL is required but not provided")
	}
	return &GemmaClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *GemmaClient) Provider() string {
	return ProviderGemma
}

type gemmaRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature"`
}

type gemmaResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (c *GemmaClient) Generate(ctx context.Context, prompt string, opts Options) (*Result, error) {
	body, err := json.Marshal(gemmaRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("gemma API error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemma API error: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemma API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gemma API error: status %d: %s", resp.StatusCode, detail)
	}

	var parsed gemmaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("gemma API error: decoding response: %w", err)
	}

	return &Result{
		Text:      parsed.GeneratedText,
		Model:     c.model,
		Provider:  ProviderGemma,
		Timestamp: time.Now(),
	}, nil
}
