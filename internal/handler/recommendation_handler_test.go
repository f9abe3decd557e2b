package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
)

type fakeRecommender struct {
	lastRequest       *model.RecommendationRequest
	lastMomentRequest *model.MomentsRecommendationRequest
	result            *model.RecommendationResult
	momentResult      *model.MomentsRecommendationResult
	err               error
}

func (f *fakeRecommender) Recommend(ctx context.Context, req model.RecommendationRequest) (*model.RecommendationResult, error) {
	f.lastRequest = &req
	return f.result, f.err
}

func (f *fakeRecommender) RecommendForMoment(ctx context.Context, req model.MomentsRecommendationRequest) (*model.MomentsRecommendationResult, error) {
	f.lastMomentRequest = &req
	return f.momentResult, f.err
}

func newTestRouter(service Recommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRecommendationHandler(service)
	r.GET("/health", GetHealth)
	r.POST("/recommend", h.Recommend)
	r.POST("/recommend_for_moment", h.RecommendForMoment)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validRecommendBody = `{
	"profile": {"profile_id": "p1", "age": 30, "gender": "female", "relationship": "sister"},
	"location": "Bath, UK",
	"upcoming_event": "birthday",
	"profile_interests": ["gardening"],
	"count": 2
}`

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeRecommender{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res HealthResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.IsAlive)
}

func TestRecommend_ReturnsRecommendations(t *testing.T) {
	service := &fakeRecommender{
		result: &model.RecommendationResult{
			ProfileID: "p1",
			Recommendations: []model.GeneralRecommendationItem{
				{Title: "Tools", Product: "Garden Tool Set", Category: "Garden", Explanation: "gardening", Store: "notonthehighstreet.com", RelevanceScore: 0.9},
			},
			GeneratedAt: time.Now(),
			Provider:    "gemini",
		},
	}
	r := newTestRouter(service)

	w := postJSON(r, "/recommend", validRecommendBody)

	assert.Equal(t, http.StatusOK, w.Code)

	var res RecommendationResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "p1", res.ProfileID)
	assert.Equal(t, "gemini", res.Provider)
	assert.Equal(t, 1, len(res.Recommendations))
	assert.Equal(t, "Garden Tool Set", res.Recommendations[0].Product)
	assert.Equal(t, 0.9, res.Recommendations[0].RelevanceScore)

	assert.Equal(t, 2, service.lastRequest.Count)
	assert.Equal(t, true, service.lastRequest.WebSearchEnabled)
}

func TestRecommend_AppliesDefaults(t *testing.T) {
	service := &fakeRecommender{
		result: &model.RecommendationResult{ProfileID: "p1", GeneratedAt: time.Now(), Provider: "gemini"},
	}
	r := newTestRouter(service)

	body := `{
		"profile": {"profile_id": "p1", "age": 30, "relationship": "sister"},
		"location": "Bath, UK",
		"upcoming_event": "birthday",
		"profile_interests": ["gardening"]
	}`
	w := postJSON(r, "/recommend", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, service.lastRequest.Count)
	assert.Equal(t, true, service.lastRequest.WebSearchEnabled)
}

func TestRecommend_WebSearchDisabled(t *testing.T) {
	service := &fakeRecommender{
		result: &model.RecommendationResult{ProfileID: "p1", GeneratedAt: time.Now(), Provider: "gemini"},
	}
	r := newTestRouter(service)

	body := `{
		"profile": {"profile_id": "p1", "age": 30, "relationship": "sister"},
		"location": "Bath, UK",
		"upcoming_event": "birthday",
		"profile_interests": ["gardening"],
		"web_search_enabled": false
	}`
	w := postJSON(r, "/recommend", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, service.lastRequest.WebSearchEnabled)
}

func TestRecommend_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing location", `{"profile": {"profile_id": "p1", "age": 30, "relationship": "sister"}, "upcoming_event": "birthday", "profile_interests": ["gardening"]}`},
		{"age too low", `{"profile": {"profile_id": "p1", "age": 15, "relationship": "sister"}, "location": "Bath, UK", "upcoming_event": "birthday", "profile_interests": ["gardening"]}`},
		{"invalid gender", `{"profile": {"profile_id": "p1", "age": 30, "gender": "unknown", "relationship": "sister"}, "location": "Bath, UK", "upcoming_event": "birthday", "profile_interests": ["gardening"]}`},
		{"count too high", `{"profile": {"profile_id": "p1", "age": 30, "relationship": "sister"}, "location": "Bath, UK", "upcoming_event": "birthday", "profile_interests": ["gardening"], "count": 21}`},
		{"empty interests", `{"profile": {"profile_id": "p1", "age": 30, "relationship": "sister"}, "location": "Bath, UK", "upcoming_event": "birthday", "profile_interests": []}`},
		{"not json", `not json`},
	}

	service := &fakeRecommender{}
	r := newTestRouter(service)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/recommend", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecommend_ServiceError(t *testing.T) {
	service := &fakeRecommender{err: errors.New("gemini API error: deadline exceeded")}
	r := newTestRouter(service)

	w := postJSON(r, "/recommend", validRecommendBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "gemini API error: deadline exceeded", res["error"])
}

func momentBody(date string) string {
	return `{
		"profile": {"profile_id": "p2", "age": 21, "relationship": "friend"},
		"moment_type": "graduation",
		"moment_date": "` + date + `",
		"profile_interests": ["photography"],
		"count": 3
	}`
}

func TestRecommendForMoment_ReturnsRecommendations(t *testing.T) {
	eventDate := time.Now().AddDate(0, 0, 30)
	service := &fakeRecommender{
		momentResult: &model.MomentsRecommendationResult{
			ProfileID:      "p2",
			MilestoneEvent: "graduation",
			EventDate:      eventDate,
			Recommendations: []model.MomentRecommendationItem{
				{Title: "Pen", Product: "Engraved Pen", GiftType: "SYMBOLIC KEEPSAKE", Explanation: "e", Store: "s.com", RelevanceScore: 0.8},
			},
			GeneratedAt: time.Now(),
			Provider:    "gemini",
		},
	}
	r := newTestRouter(service)

	w := postJSON(r, "/recommend_for_moment", momentBody(eventDate.Format("2006-01-02")))

	assert.Equal(t, http.StatusOK, w.Code)

	var res MomentsRecommendationResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "graduation", res.MilestoneEvent)
	assert.Equal(t, eventDate.Format("2006-01-02"), res.EventDate)
	assert.Equal(t, 1, len(res.Recommendations))
	assert.Equal(t, "SYMBOLIC KEEPSAKE", res.Recommendations[0].GiftType)

	assert.Equal(t, 3, service.lastMomentRequest.Count)
}

func TestRecommendForMoment_AcceptsToday(t *testing.T) {
	service := &fakeRecommender{
		momentResult: &model.MomentsRecommendationResult{ProfileID: "p2", GeneratedAt: time.Now(), Provider: "gemini"},
	}
	r := newTestRouter(service)

	w := postJSON(r, "/recommend_for_moment", momentBody(time.Now().Format("2006-01-02")))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecommendForMoment_RejectsPastDate(t *testing.T) {
	service := &fakeRecommender{}
	r := newTestRouter(service)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	w := postJSON(r, "/recommend_for_moment", momentBody(yesterday))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "moment_date must be today or in the future", res["error"])
}

func TestRecommendForMoment_RejectsBadDateFormat(t *testing.T) {
	service := &fakeRecommender{}
	r := newTestRouter(service)

	w := postJSON(r, "/recommend_for_moment", momentBody("30/06/2030"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
