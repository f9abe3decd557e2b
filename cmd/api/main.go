package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/config"
	"github.com/allloveconcierge/tlc-recommendation-service/internal/handler"
	"github.com/allloveconcierge/tlc-recommendation-service/internal/service"
	"github.com/allloveconcierge/tlc-recommendation-service/pkg/llm"
	"github.com/allloveconcierge/tlc-recommendation-service/pkg/search"
)

func main() {

	godotenv.Load()

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	llmClient, err := llm.New(cfg.LLM)
	if err != nil {
		log.Fatalf("error configuring LLM client: %v", err)
	}

	var searchClient search.Client
	if cfg.Search.ExaAPIKey != "" {
		searchClient = search.NewExaClient(cfg.Search.ExaAPIKey)
	} else {
		slog.Info("EXA_API_KEY not set, web-search enrichment disabled")
	}
	enricher := service.NewEnricher(searchClient, cfg.Search.NumResults, cfg.Search.Concurrency, cfg.Search.Timeout)

	recommendationService := service.NewRecommendationService(llmClient, enricher)
	summarizationService := service.NewSummarizationService(llmClient)

	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	summarizationHandler := handler.NewSummarizationHandler(summarizationService)

	r := gin.Default()

	slog.Info("allowed CORS origins", "origins", cfg.AllowedOrigins)

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	r.Use(handler.RequestID())
	r.Use(handler.AdmissionLimiter(cfg.Concurrency))

	r.GET("/health", handler.GetHealth)
	r.POST("/recommend", recommendationHandler.Recommend)
	r.POST("/recommend_for_moment", recommendationHandler.RecommendForMoment)
	r.POST("/summarize", summarizationHandler.Summarize)

	slog.Info("starting gift recommendation API", "addr", cfg.Addr(), "provider", llmClient.Provider())

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
