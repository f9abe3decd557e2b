package handler

import (
	"time"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
)

const (
	defaultCount     = 10
	defaultMaxLength = 200
	momentDateLayout = "2006-01-02"
)

type ProfileRequest struct {
	ProfileID    string `json:"profile_id" binding:"required"`
	Age          int    `json:"age" binding:"required,gt=15"`
	Gender       string `json:"gender" binding:"omitempty,oneof=male female other prefer_not_to_say"`
	Relationship string `json:"relationship" binding:"required"`
}

type RecommendationRequest struct {
	Profile          ProfileRequest `json:"profile" binding:"required"`
	Location         string         `json:"location" binding:"required"`
	UpcomingEvent    string         `json:"upcoming_event" binding:"required"`
	ProfileInterests []string       `json:"profile_interests" binding:"required,min=1"`
	Context          string         `json:"context"`
	Notes            string         `json:"notes"`
	Count            int            `json:"count" binding:"omitempty,gte=1,lte=20"`
	WebSearchEnabled *bool          `json:"web_search_enabled"`
}

func (r RecommendationRequest) toModel() model.RecommendationRequest {
	count := r.Count
	if count == 0 {
		count = defaultCount
	}
	webSearch := true
	if r.WebSearchEnabled != nil {
		webSearch = *r.WebSearchEnabled
	}
	return model.RecommendationRequest{
		Profile:          r.Profile.toModel(),
		Location:         r.Location,
		UpcomingEvent:    r.UpcomingEvent,
		Interests:        r.ProfileInterests,
		Context:          r.Context,
		Notes:            r.Notes,
		Count:            count,
		WebSearchEnabled: webSearch,
	}
}

func (p ProfileRequest) toModel() model.Profile {
	return model.Profile{
		ProfileID:    p.ProfileID,
		Age:          p.Age,
		Gender:       p.Gender,
		Relationship: p.Relationship,
	}
}

type MomentsRecommendationRequest struct {
	Profile          ProfileRequest `json:"profile" binding:"required"`
	MomentType       string         `json:"moment_type" binding:"required"`
	MomentDate       string         `json:"moment_date" binding:"required,datetime=2006-01-02"`
	ProfileInterests []string       `json:"profile_interests" binding:"required,min=1"`
	Context          string         `json:"context"`
	Count            int            `json:"count" binding:"omitempty,gte=1,lte=20"`
}

func (r MomentsRecommendationRequest) toModel(momentDate time.Time) model.MomentsRecommendationRequest {
	count := r.Count
	if count == 0 {
		count = defaultCount
	}
	return model.MomentsRecommendationRequest{
		Profile:    r.Profile.toModel(),
		MomentType: r.MomentType,
		MomentDate: momentDate,
		Interests:  r.ProfileInterests,
		Context:    r.Context,
		Count:      count,
	}
}

type SummarizationRequest struct {
	Text      string `json:"text" binding:"required"`
	MaxLength int    `json:"max_length" binding:"omitempty,gte=50,lte=1000"`
	Format    string `json:"format" binding:"omitempty,oneof=paragraph bullet_points key_points"`
}

func (r SummarizationRequest) toModel() model.SummarizationRequest {
	maxLength := r.MaxLength
	if maxLength == 0 {
		maxLength = defaultMaxLength
	}
	format := r.Format
	if format == "" {
		format = model.FormatParagraph
	}
	return model.SummarizationRequest{
		Text:      r.Text,
		MaxLength: maxLength,
		Format:    format,
	}
}

type HealthResponse struct {
	IsAlive bool `json:"isAlive"`
}

type GeneralRecommendationItemResponse struct {
	Title          string         `json:"title"`
	Product        string         `json:"product"`
	Category       string         `json:"category"`
	Explanation    string         `json:"explanation"`
	Store          string         `json:"store"`
	RelevanceScore float64        `json:"relevance_score"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ProductURL     string         `json:"product_url,omitempty"`
	ProductImage   string         `json:"product_image,omitempty"`
	ProductCost    string         `json:"product_cost,omitempty"`
}

type RecommendationResponse struct {
	ProfileID       string                              `json:"profile_id"`
	Recommendations []GeneralRecommendationItemResponse `json:"recommendations"`
	GeneratedAt     string                              `json:"generated_at"`
	Provider        string                              `json:"provider"`
}

type MomentRecommendationItemResponse struct {
	Title          string         `json:"title"`
	Product        string         `json:"product"`
	GiftType       string         `json:"gift_type"`
	Explanation    string         `json:"explanation"`
	Store          string         `json:"store"`
	RelevanceScore float64        `json:"relevance_score"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ProductURL     string         `json:"product_url,omitempty"`
	ProductImage   string         `json:"product_image,omitempty"`
	ProductCost    string         `json:"product_cost,omitempty"`
}

type MomentsRecommendationResponse struct {
	ProfileID       string                             `json:"profile_id"`
	MilestoneEvent  string                             `json:"milestone_event"`
	EventDate       string                             `json:"event_date"`
	Recommendations []MomentRecommendationItemResponse `json:"recommendations"`
	GeneratedAt     string                             `json:"generated_at"`
	Provider        string                             `json:"provider"`
}

type SummarizationResponse struct {
	Summary            string `json:"summary"`
	OriginalTextLength int    `json:"original_text_length"`
	SummaryLength      int    `json:"summary_length"`
	GeneratedAt        string `json:"generated_at"`
	Provider           string `json:"provider"`
}

func toRecommendationResponse(result *model.RecommendationResult) RecommendationResponse {
	items := make([]GeneralRecommendationItemResponse, len(result.Recommendations))
	for i, item := range result.Recommendations {
		items[i] = GeneralRecommendationItemResponse{
			Title:          item.Title,
			Product:        item.Product,
			Category:       item.Category,
			Explanation:    item.Explanation,
			Store:          item.Store,
			RelevanceScore: item.RelevanceScore,
			Metadata:       item.Metadata,
			ProductURL:     item.ProductURL,
			ProductImage:   item.ProductImage,
			ProductCost:    item.ProductCost,
		}
	}
	return RecommendationResponse{
		ProfileID:       result.ProfileID,
		Recommendations: items,
		GeneratedAt:     result.GeneratedAt.Format(time.RFC3339),
		Provider:        result.Provider,
	}
}

func toMomentsRecommendationResponse(result *model.MomentsRecommendationResult) MomentsRecommendationResponse {
	items := make([]MomentRecommendationItemResponse, len(result.Recommendations))
	for i, item := range result.Recommendations {
		items[i] = MomentRecommendationItemResponse{
			Title:          item.Title,
			Product:        item.Product,
			GiftType:       item.GiftType,
			Explanation:    item.Explanation,
			Store:          item.Store,
			RelevanceScore: item.RelevanceScore,
			Metadata:       item.Metadata,
			ProductURL:     item.ProductURL,
			ProductImage:   item.ProductImage,
			ProductCost:    item.ProductCost,
		}
	}
	return MomentsRecommendationResponse{
		ProfileID:       result.ProfileID,
		MilestoneEvent:  result.MilestoneEvent,
		EventDate:       result.EventDate.Format(momentDateLayout),
		Recommendations: items,
		GeneratedAt:     result.GeneratedAt.Format(time.RFC3339),
		Provider:        result.Provider,
	}
}

func toSummarizationResponse(result *model.SummarizationResult) SummarizationResponse {
	return SummarizationResponse{
		Summary:            result.Summary,
		OriginalTextLength: result.OriginalTextLength,
		SummaryLength:      result.SummaryLength,
		GeneratedAt:        result.GeneratedAt.Format(time.RFC3339),
		Provider:           result.Provider,
	}
}
