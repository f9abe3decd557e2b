package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
)

type Recommender interface {
	Recommend(ctx context.Context, req model.RecommendationRequest) (*model.RecommendationResult, error)
	RecommendForMoment(ctx context.Context, req model.MomentsRecommendationRequest) (*model.MomentsRecommendationResult, error)
}

type RecommendationHandler struct {
	service Recommender
}

func NewRecommendationHandler(service Recommender) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Recommend(c.Request.Context(), req.toModel())
	if err != nil {
		slog.Error("error generating recommendations", "profile_id", req.Profile.ProfileID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toRecommendationResponse(result))
}

func (h *RecommendationHandler) RecommendForMoment(c *gin.Context) {
	var req MomentsRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	momentDate, err := time.ParseInLocation(momentDateLayout, req.MomentDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "moment_date must be formatted as YYYY-MM-DD"})
		return
	}

	// today is acceptable; only dates strictly in the past are rejected
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if momentDate.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "moment_date must be today or in the future"})
		return
	}

	result, err := h.service.RecommendForMoment(c.Request.Context(), req.toModel(momentDate))
	if err != nil {
		slog.Error("error generating moment recommendations",
			"profile_id", req.Profile.ProfileID, "moment_type", req.MomentType, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toMomentsRecommendationResponse(result))
}

func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{IsAlive: true})
}
