package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient serves both the gemini and flash provider variants; they
// share the Gemini API backend and differ only in model name and label.
type GeminiClient struct {
	client   *genai.Client
	provider string
	model    string
	timeout  time.Duration
}

func NewGeminiClient(provider, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required but not provided", provider)
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", provider, err)
	}
	return &GeminiClient{
		client:   client,
		provider: provider,
		model:    model,
		timeout:  timeout,
	}, nil
}

func (c *GeminiClient) Provider() string {
	return c.provider
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string, opts Options) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(opts.Temperature)),
	}
	if opts.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxTokens)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", c.provider, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from %s", c.provider)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return &Result{
		Text:      sb.String(),
		Model:     c.model,
		Provider:  c.provider,
		Timestamp: time.Now(),
	}, nil
}
