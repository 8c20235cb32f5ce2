package search

import (
	"context"

	"github.com/ngdp/geoportal/internal/domain"
)

// Adapter is one entity search adapter: it knows which columns of its
// entity table to match and how to project a matching row into an Entry.
// Offset and limit are applied per adapter, not globally.
type Adapter interface {
	// Model returns the entity type name placed into result cards.
	Model() string

	// Search returns rows where any match column contains any keyword as a
	// case-insensitive substring, soft-deleted rows excluded, ordered by
	// primary key descending.
	Search(ctx context.Context, keywords []string, offset, limit int) ([]domain.Entry, error)
}

// AssetResolver turns a stored relative image path into an absolute,
// browser-fetchable URL. Returns nil for an empty path.
type AssetResolver interface {
	ImageURL(path string) *string
}
