package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
	"github.com/allloveconcierge/tlc-recommendation-service/pkg/search"
)

type fakeSearch struct {
	mu      sync.Mutex
	queries []string
	results []search.Result
	err     error
	delay   time.Duration
}

func (f *fakeSearch) Search(ctx context.Context, query string, numResults int) ([]search.Result, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.results, f.err
}

func newTestEnricher(client search.Client) *Enricher {
	return NewEnricher(client, 3, 2, 500*time.Millisecond)
}

func TestEnrich_FillsMissingLinks(t *testing.T) {
	fake := &fakeSearch{results: []search.Result{{Title: "Mug", URL: "https://johnlewis.com/mug"}}}
	items := []model.GeneralRecommendationItem{
		{Product: "Mug", Category: "Home", Store: "johnlewis.com"},
		{Product: "Tools", Category: "Garden", Store: "shop.johnlewis.com", ProductURL: model.PlaceholderURL},
	}

	newTestEnricher(fake).Enrich(context.Background(), items)

	assert.Equal(t, "https://johnlewis.com/mug", items[0].ProductURL)
	assert.Equal(t, "https://johnlewis.com/mug", items[1].ProductURL)
	assert.Equal(t, 2, len(fake.queries))
}

func TestEnrich_SkipsItemsWithRealLinks(t *testing.T) {
	fake := &fakeSearch{results: []search.Result{{URL: "https://other.com"}}}
	items := []model.GeneralRecommendationItem{
		{Product: "Mug", Store: "johnlewis.com", ProductURL: "https://johnlewis.com/mug"},
	}

	newTestEnricher(fake).Enrich(context.Background(), items)

	assert.Equal(t, "https://johnlewis.com/mug", items[0].ProductURL)
	assert.Equal(t, 0, len(fake.queries))
}

func TestEnrich_SearchErrorLeavesItemUntouched(t *testing.T) {
	fake := &fakeSearch{err: errors.New("search down")}
	items := []model.GeneralRecommendationItem{
		{Product: "Mug", Store: "johnlewis.com"},
	}

	newTestEnricher(fake).Enrich(context.Background(), items)

	assert.Equal(t, "", items[0].ProductURL)
}

func TestEnrich_EmptyResultsLeaveItemUntouched(t *testing.T) {
	fake := &fakeSearch{results: []search.Result{}}
	items := []model.GeneralRecommendationItem{
		{Product: "Mug", Store: "johnlewis.com", ProductURL: model.PlaceholderURL},
	}

	newTestEnricher(fake).Enrich(context.Background(), items)

	assert.Equal(t, model.PlaceholderURL, items[0].ProductURL)
}

func TestEnrich_RespectsTimeout(t *testing.T) {
	fake := &fakeSearch{
		delay:   5 * time.Second,
		results: []search.Result{{URL: "https://late.com"}},
	}
	enricher := NewEnricher(fake, 3, 2, 100*time.Millisecond)
	items := []model.GeneralRecommendationItem{
		{Product: "Mug", Store: "johnlewis.com"},
		{Product: "Tools", Store: "johnlewis.com"},
	}

	start := time.Now()
	enricher.Enrich(context.Background(), items)

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("enrichment blocked for %v, want well under a second", elapsed)
	}
	assert.Equal(t, "", items[0].ProductURL)
}

func TestEnrich_NilClientIsNoOp(t *testing.T) {
	items := []model.GeneralRecommendationItem{{Product: "Mug", Store: "johnlewis.com"}}

	NewEnricher(nil, 3, 2, time.Second).Enrich(context.Background(), items)

	assert.Equal(t, "", items[0].ProductURL)
}

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name string
		item model.GeneralRecommendationItem
		want string
	}{
		{
			"full item",
			model.GeneralRecommendationItem{Product: "Personalised Mug", Category: "Home", Store: "johnlewis.com"},
			"Personalised Mug Home site:johnlewis.com UK",
		},
		{
			"subdomain reduced to base domain",
			model.GeneralRecommendationItem{Product: "Tools", Store: "shop.johnlewis.com"},
			"Tools site:johnlewis.com UK",
		},
		{
			"empty item falls back",
			model.GeneralRecommendationItem{},
			"gift UK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSearchQuery(&tt.item))
		})
	}
}
