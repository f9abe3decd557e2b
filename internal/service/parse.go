package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
)

const (
	defaultRelevanceScore = 0.5
	placeholderScore      = 0.01
	maxPlaceholderItems   = 3
)

// cleanResponse strips markdown code fences and surrounding whitespace.
// Model responses often wrap JSON in a fenced block.
func cleanResponse(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// extractJSONArray returns the substring from the first '[' to the last ']'.
func extractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// decodeEntries extracts a JSON list from arbitrary LLM text. It tries a
// direct decode first (unwrapping a single wrapper key when the value is
// an object), then falls back to the bracket-delimited substring.
func decodeEntries(text, wrapperKey string) ([]any, bool) {
	candidates := []string{cleanResponse(text)}
	if sub, ok := extractJSONArray(text); ok {
		candidates = append(candidates, sub)
	}

	for _, candidate := range candidates {
		var decoded any
		if err := json.Unmarshal([]byte(candidate), &decoded); err != nil {
			continue
		}
		switch v := decoded.(type) {
		case []any:
			return v, true
		case map[string]any:
			if inner, ok := v[wrapperKey].([]any); ok {
				return inner, true
			}
		}
	}

	return nil, false
}

// parseCategories decodes a JSON array of category names from LLM text.
// Unlike item parsing this is not best-effort: the second pipeline stage
// cannot run without categories, so failure propagates.
func parseCategories(text string) ([]string, error) {
	entries, ok := decodeEntries(text, "categories")
	if !ok {
		return nil, errors.New("no JSON array of categories in LLM response")
	}

	categories := make([]string, 0, len(entries))
	for _, entry := range entries {
		name, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("category entry is not a string: %v", entry)
		}
		categories = append(categories, name)
	}

	if len(categories) == 0 {
		return nil, errors.New("empty category list in LLM response")
	}

	return categories, nil
}

// parseGeneralRecommendations maps LLM text onto recommendation items.
// It never fails: undecodable text yields placeholder items (capped at
// three) and an entry missing a required field degrades to a placeholder
// in place. The degraded flag reports whether any fallback was taken.
func parseGeneralRecommendations(text string, expectedCount int) (items []model.GeneralRecommendationItem, degraded bool) {
	entries, ok := decodeEntries(text, "recommendations")
	if !ok {
		return placeholderGeneralItems(expectedCount), true
	}

	if len(entries) > expectedCount {
		entries = entries[:expectedCount]
	}

	items = make([]model.GeneralRecommendationItem, 0, len(entries))
	for i, entry := range entries {
		item, ok := mapGeneralItem(entry)
		if !ok {
			item = placeholderGeneralItem(i)
			degraded = true
		}
		items = append(items, item)
	}

	return items, degraded
}

// parseMomentRecommendations is the moment-variant mapping. Undecodable
// text yields an empty list rather than placeholders.
func parseMomentRecommendations(text string, expectedCount int) (items []model.MomentRecommendationItem, degraded bool) {
	entries, ok := decodeEntries(text, "milestone_recommendations")
	if !ok {
		return []model.MomentRecommendationItem{}, true
	}

	if len(entries) > expectedCount {
		entries = entries[:expectedCount]
	}

	items = make([]model.MomentRecommendationItem, 0, len(entries))
	for i, entry := range entries {
		item, ok := mapMomentItem(entry)
		if !ok {
			item = model.MomentRecommendationItem{
				Title:          fmt.Sprintf("Recommendation %d", i+1),
				RelevanceScore: placeholderScore,
			}
			degraded = true
		}
		items = append(items, item)
	}

	return items, degraded
}

func mapGeneralItem(entry any) (model.GeneralRecommendationItem, bool) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return model.GeneralRecommendationItem{}, false
	}

	product, ok := stringField(fields, "product")
	if !ok {
		return model.GeneralRecommendationItem{}, false
	}
	category, ok := stringField(fields, "category")
	if !ok {
		return model.GeneralRecommendationItem{}, false
	}
	explanation, ok := stringField(fields, "explanation")
	if !ok {
		return model.GeneralRecommendationItem{}, false
	}
	store, ok := stringField(fields, "store")
	if !ok {
		return model.GeneralRecommendationItem{}, false
	}

	return model.GeneralRecommendationItem{
		Title:          optionalString(fields, "title", product),
		Product:        product,
		Category:       category,
		Explanation:    explanation,
		Store:          store,
		RelevanceScore: relevanceScore(fields),
		Metadata:       metadataField(fields),
		ProductURL:     optionalString(fields, "product_url", ""),
		ProductImage:   optionalString(fields, "product_image", ""),
		ProductCost:    optionalString(fields, "product_cost", ""),
	}, true
}

func mapMomentItem(entry any) (model.MomentRecommendationItem, bool) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return model.MomentRecommendationItem{}, false
	}

	product, ok := stringField(fields, "product")
	if !ok {
		return model.MomentRecommendationItem{}, false
	}
	giftType, ok := stringField(fields, "gift_type")
	if !ok {
		return model.MomentRecommendationItem{}, false
	}
	explanation, ok := stringField(fields, "explanation")
	if !ok {
		return model.MomentRecommendationItem{}, false
	}
	store, ok := stringField(fields, "store")
	if !ok {
		return model.MomentRecommendationItem{}, false
	}

	return model.MomentRecommendationItem{
		Title:          optionalString(fields, "title", product),
		Product:        product,
		GiftType:       giftType,
		Explanation:    explanation,
		Store:          store,
		RelevanceScore: relevanceScore(fields),
		Metadata:       metadataField(fields),
		ProductURL:     optionalString(fields, "product_url", ""),
		ProductImage:   optionalString(fields, "product_image", ""),
		ProductCost:    optionalString(fields, "product_cost", ""),
	}, true
}

func placeholderGeneralItems(expectedCount int) []model.GeneralRecommendationItem {
	n := expectedCount
	if n > maxPlaceholderItems {
		n = maxPlaceholderItems
	}
	items := make([]model.GeneralRecommendationItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, placeholderGeneralItem(i))
	}
	return items
}

func placeholderGeneralItem(index int) model.GeneralRecommendationItem {
	return model.GeneralRecommendationItem{
		Title:          fmt.Sprintf("Recommendation %d", index+1),
		RelevanceScore: placeholderScore,
	}
}

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func optionalString(fields map[string]any, key, fallback string) string {
	if v, ok := fields[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func relevanceScore(fields map[string]any) float64 {
	score, ok := fields["relevance_score"].(float64)
	if !ok {
		return defaultRelevanceScore
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func metadataField(fields map[string]any) map[string]any {
	if m, ok := fields["metadata"].(map[string]any); ok {
		return m
	}
	return nil
}
