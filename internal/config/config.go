package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/allloveconcierge/tlc-recommendation-service/pkg/llm"
)

// Config is read from the environment exactly once at startup and passed
// down by reference; nothing reloads it.
type Config struct {
	Port           int
	Concurrency    int64
	AllowedOrigins []string
	LogLevel       slog.Level
	LLM            llm.Config
	Search         SearchConfig
}

type SearchConfig struct {
	ExaAPIKey   string
	NumResults  int
	Concurrency int
	Timeout     time.Duration
}

func Load() *Config {
	return &Config{
		Port:           getEnvInt("PORT", 8080),
		Concurrency:    int64(getEnvInt("CONCURRENCY", 50)),
		AllowedOrigins: loadAllowedOrigins(),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LLM: llm.Config{
			Provider:       getEnv("LLM_PROVIDER", "gemini"),
			ClaudeAPIKey:   os.Getenv("CLAUDE_API_KEY"),
			ClaudeModel:    getEnv("CLAUDE_MODEL", "claude-3-7-sonnet-20250219"),
			OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o"),
			GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-pro-preview-03-25"),
			FlashModel:     getEnv("FLASH_MODEL", "gemini-2.5-flash-preview-04-17"),
			GemmaAPIKey:    os.Getenv("GEMMA_API_KEY"),
			GemmaBaseURL:   os.Getenv("GEMMA_BASE_URL"),
			GemmaModel:     getEnv("GEMMA_MODEL", "gemma-7b"),
			RequestTimeout: getEnvDuration("LLM_REQUEST_TIMEOUT", 30*time.Second),
		},
		Search: SearchConfig{
			ExaAPIKey:   os.Getenv("EXA_API_KEY"),
			NumResults:  getEnvInt("EXA_NUM_RESULTS", 3),
			Concurrency: getEnvInt("EXA_CONCURRENCY", 6),
			Timeout:     getEnvDuration("EXA_TIMEOUT", 12*time.Second),
		},
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func loadAllowedOrigins() []string {
	raw := getEnv("ALLOWED_ORIGINS", "*")

	var origins []string
	if raw == "*" {
		origins = []string{"*"}
	} else {
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" && raw != "*" {
		origins = append(origins, frontendURL)
	}

	return origins
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
