package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(50), cfg.Concurrency)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAIModel)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, 3, cfg.Search.NumResults)
	assert.Equal(t, 6, cfg.Search.Concurrency)
	assert.Equal(t, 12*time.Second, cfg.Search.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_REQUEST_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("FRONTEND_URL", "https://gifts.example.com")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 45*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{
		"https://app.example.com",
		"https://staging.example.com",
		"https://gifts.example.com",
	}, cfg.AllowedOrigins)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("CONCURRENCY", "not-a-number")

	cfg := Load()

	assert.Equal(t, int64(50), cfg.Concurrency)
}
