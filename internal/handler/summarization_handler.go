package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
)

type Summarizer interface {
	Summarize(ctx context.Context, req model.SummarizationRequest) (*model.SummarizationResult, error)
}

type SummarizationHandler struct {
	service Summarizer
}

func NewSummarizationHandler(service Summarizer) *SummarizationHandler {
	return &SummarizationHandler{service: service}
}

func (h *SummarizationHandler) Summarize(c *gin.Context) {
	var req SummarizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Summarize(c.Request.Context(), req.toModel())
	if err != nil {
		slog.Error("error generating summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toSummarizationResponse(result))
}
