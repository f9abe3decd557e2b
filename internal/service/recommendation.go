package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
	"github.com/allloveconcierge/tlc-recommendation-service/pkg/llm"
)

const recommendationTemperature = 0.7

// RecommendationService orchestrates the gift recommendation pipeline:
// determine categories, generate recommendations, parse, enrich links.
type RecommendationService struct {
	llm      llm.Client
	enricher *Enricher
}

func NewRecommendationService(client llm.Client, enricher *Enricher) *RecommendationService {
	return &RecommendationService{llm: client, enricher: enricher}
}

func (s *RecommendationService) Recommend(ctx context.Context, req model.RecommendationRequest) (*model.RecommendationResult, error) {
	start := time.Now()

	categories, err := s.determineCategories(ctx, req)
	if err != nil {
		return nil, err
	}
	slog.Info("determined gift categories", "profile_id", req.Profile.ProfileID, "categories", categories.Categories)

	prompt := generalRecommendationPrompt(req, categories.Categories)
	resp, err := s.llm.Generate(ctx, prompt, llm.Options{Temperature: recommendationTemperature})
	if err != nil {
		return nil, err
	}

	items, degraded := parseGeneralRecommendations(resp.Text, req.Count)
	if degraded {
		slog.Warn("recommendation response degraded during parsing", "profile_id", req.Profile.ProfileID)
	}

	if req.WebSearchEnabled {
		s.enricher.Enrich(ctx, items)
	}

	slog.Info("recommendations generated",
		"profile_id", req.Profile.ProfileID,
		"count", len(items),
		"provider", s.llm.Provider(),
		"elapsed", time.Since(start))

	return &model.RecommendationResult{
		ProfileID:       req.Profile.ProfileID,
		Recommendations: items,
		Degraded:        degraded,
		GeneratedAt:     time.Now(),
		Provider:        s.llm.Provider(),
	}, nil
}

func (s *RecommendationService) RecommendForMoment(ctx context.Context, req model.MomentsRecommendationRequest) (*model.MomentsRecommendationResult, error) {
	start := time.Now()

	prompt := momentRecommendationPrompt(req, time.Now())
	resp, err := s.llm.Generate(ctx, prompt, llm.Options{Temperature: recommendationTemperature})
	if err != nil {
		return nil, err
	}

	items, degraded := parseMomentRecommendations(resp.Text, req.Count)
	if degraded {
		slog.Warn("moment recommendation response degraded during parsing",
			"profile_id", req.Profile.ProfileID, "moment_type", req.MomentType)
	}

	slog.Info("moment recommendations generated",
		"profile_id", req.Profile.ProfileID,
		"moment_type", req.MomentType,
		"count", len(items),
		"provider", s.llm.Provider(),
		"elapsed", time.Since(start))

	return &model.MomentsRecommendationResult{
		ProfileID:       req.Profile.ProfileID,
		MilestoneEvent:  req.MomentType,
		EventDate:       req.MomentDate,
		Recommendations: items,
		Degraded:        degraded,
		GeneratedAt:     time.Now(),
		Provider:        s.llm.Provider(),
	}, nil
}

func (s *RecommendationService) determineCategories(ctx context.Context, req model.RecommendationRequest) (*model.Categories, error) {
	prompt := categoryDeterminationPrompt(req)
	resp, err := s.llm.Generate(ctx, prompt, llm.Options{Temperature: recommendationTemperature})
	if err != nil {
		return nil, err
	}

	categories, err := parseCategories(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}

	return &model.Categories{
		Categories: categories,
		Provider:   s.llm.Provider(),
	}, nil
}
