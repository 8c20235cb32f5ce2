// Package search implements the global search core: keyword extraction,
// fan-out across the entity search adapters in a fixed order, and result
// card assembly with highlighting.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/ngdp/geoportal/internal/domain"
)

// Service aggregates entity search adapters into one flat result list.
type Service struct {
	adapters []Adapter
	assets   AssetResolver
}

// New creates the aggregator. The adapter slice order is significant: it is
// the order sub-results are concatenated, and therefore the order results
// reach the caller. There is no cross-entity relevance ranking.
func New(adapters []Adapter, assets AssetResolver) *Service {
	return &Service{adapters: adapters, assets: assets}
}

// Global runs the query against every adapter and concatenates their cards.
//
// Pagination is applied independently per entity type: each adapter gets
// the same skip/limit window against its own table, so one page can carry
// up to len(adapters)*limit cards. The portal UI depends on this shape;
// do not replace it with a global window.
//
// Any adapter failure aborts the whole aggregation; there is no
// partial-result mode. A blank query yields ErrEmptyQuery, a query that
// matched nothing yields ErrNoResults.
func (s *Service) Global(ctx context.Context, query string, skip, limit int) ([]domain.Card, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	keywords := ExtractKeywords(query)
	if len(keywords) == 0 {
		// Fallback guarantee: never aggregate with zero keywords.
		keywords = []string{strings.ToLower(query)}
	}

	var cards []domain.Card
	for _, a := range s.adapters {
		entries, err := a.Search(ctx, keywords, skip, limit)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", a.Model(), err)
		}
		for _, e := range entries {
			cards = append(cards, s.buildCard(e, keywords))
		}
	}
	if len(cards) == 0 {
		return nil, domain.ErrNoResults
	}
	return cards, nil
}

// buildCard highlights the four text slots and resolves the image URL.
func (s *Service) buildCard(e domain.Entry, keywords []string) domain.Card {
	return domain.Card{
		Model:         e.Model,
		Category:      e.Category,
		URL:           e.URL,
		TitleEn:       Highlight(e.TitleEn, keywords),
		TitleAr:       Highlight(e.TitleAr, keywords),
		DescriptionEn: Highlight(e.DescriptionEn, keywords),
		DescriptionAr: Highlight(e.DescriptionAr, keywords),
		Image:         s.assets.ImageURL(e.ImagePath),
	}
}
