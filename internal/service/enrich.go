package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
	"github.com/allloveconcierge/tlc-recommendation-service/pkg/search"
)

// Enricher fills missing product links via a web-search API. Every lookup
// is independently fallible: a failed search leaves the item untouched and
// is never surfaced to the caller.
type Enricher struct {
	client      search.Client
	numResults  int
	concurrency int
	timeout     time.Duration
}

// NewEnricher wraps a search client. A nil client disables enrichment;
// Enrich becomes a no-op.
func NewEnricher(client search.Client, numResults, concurrency int, timeout time.Duration) *Enricher {
	return &Enricher{
		client:      client,
		numResults:  numResults,
		concurrency: concurrency,
		timeout:     timeout,
	}
}

// Enrich mutates items in place, setting ProductURL on entries whose link
// is empty or the placeholder. The whole pass runs under one deadline; on
// expiry, in-flight lookups are abandoned and the list is returned as-is.
func (e *Enricher) Enrich(ctx context.Context, items []model.GeneralRecommendationItem) {
	if e == nil || e.client == nil || len(items) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	g := new(errgroup.Group)
	g.SetLimit(e.concurrency)

	for i := range items {
		item := &items[i]
		if item.ProductURL != "" && item.ProductURL != model.PlaceholderURL {
			continue
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results, err := e.client.Search(ctx, buildSearchQuery(item), e.numResults)
			if err != nil {
				slog.Debug("search enrichment failed", "product", item.Product, "error", err)
				return nil
			}
			if len(results) == 0 || results[0].URL == "" {
				return nil
			}
			item.ProductURL = results[0].URL
			return nil
		})
	}

	g.Wait()
}

func buildSearchQuery(item *model.GeneralRecommendationItem) string {
	var parts []string
	if item.Product != "" {
		parts = append(parts, item.Product)
	}
	if item.Category != "" {
		parts = append(parts, item.Category)
	}
	if domain := baseDomain(item.Store); domain != "" {
		parts = append(parts, "site:"+domain)
	}
	parts = append(parts, "UK")

	query := strings.TrimSpace(strings.Join(parts, " "))
	if query == "UK" {
		return "gift UK"
	}
	return query
}

// baseDomain reduces a store value like "shop.example.co" to its last two
// labels so site: filters match the whole store.
func baseDomain(domain string) string {
	if domain == "" {
		return ""
	}
	parts := strings.Split(strings.ToLower(domain), ".")
	if len(parts) < 2 {
		return strings.ToLower(domain)
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
