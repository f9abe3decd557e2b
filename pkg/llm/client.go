package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderGemma  = "gemma"
	ProviderFlash  = "flash"
)

type Options struct {
	MaxTokens   int
	Temperature float64
}

type Result struct {
	Text      string
	Model     string
	Provider  string
	Timestamp time.Time
}

// Client is the uniform contract every provider adapter implements.
// Adapters translate provider errors into their own wrapped message and
// never retry; a failed call is terminal for the request.
type Client interface {
	Generate(ctx context.Context, prompt string, opts Options) (*Result, error)
	Provider() string
}

type Config struct {
	Provider string

	ClaudeAPIKey string
	ClaudeModel  string

	OpenAIAPIKey string
	OpenAIModel  string

	GoogleAPIKey string
	GeminiModel  string
	FlashModel   string

	GemmaAPIKey  string
	GemmaBaseURL string
	GemmaModel   string

	RequestTimeout time.Duration
}

// New resolves the configured provider name to exactly one adapter.
// Resolution happens once at startup; an unknown name or a missing
// credential is a configuration error.
func New(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderClaude:
		return NewAnthropicClient(cfg.ClaudeAPIKey, cfg.ClaudeModel, cfg.RequestTimeout)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.RequestTimeout)
	case ProviderGemini:
		return NewGeminiClient(ProviderGemini, cfg.GoogleAPIKey, cfg.GeminiModel, cfg.RequestTimeout)
	case ProviderFlash:
		return NewGeminiClient(ProviderFlash, cfg.GoogleAPIKey, cfg.FlashModel, cfg.RequestTimeout)
	case ProviderGemma:
		return NewGemmaClient(cfg.GemmaAPIKey, cfg.GemmaBaseURL, cfg.GemmaModel, cfg.RequestTimeout)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q (supported: claude, openai, gemini, gemma, flash)", cfg.Provider)
	}
}
