package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
	"github.com/allloveconcierge/tlc-recommendation-service/pkg/llm"
)

// Lower temperature keeps summaries close to the source text.
const summarizationTemperature = 0.3

type SummarizationService struct {
	llm llm.Client
}

func NewSummarizationService(client llm.Client) *SummarizationService {
	return &SummarizationService{llm: client}
}

func (s *SummarizationService) Summarize(ctx context.Context, req model.SummarizationRequest) (*model.SummarizationResult, error) {
	start := time.Now()

	prompt := summarizationPrompt(req)
	resp, err := s.llm.Generate(ctx, prompt, llm.Options{
		MaxTokens:   req.MaxLength,
		Temperature: summarizationTemperature,
	})
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(resp.Text)

	slog.Info("summary generated",
		"original_length", len(req.Text),
		"summary_length", len(summary),
		"provider", s.llm.Provider(),
		"elapsed", time.Since(start))

	return &model.SummarizationResult{
		Summary:            summary,
		OriginalTextLength: len(req.Text),
		SummaryLength:      len(summary),
		GeneratedAt:        time.Now(),
		Provider:           s.llm.Provider(),
	}, nil
}
