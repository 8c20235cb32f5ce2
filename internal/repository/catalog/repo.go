// Package catalog implements the entity search adapters over the portal
// content database. One generic LIKE-based query serves all nine entity
// types; the per-type differences live entirely in the descriptor table.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/ngdp/geoportal/internal/domain"
)

// querier is the consumer interface for the content database (ISP).
// Satisfied by *sql.DB.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Adapter searches one entity table. It implements usecase/search.Adapter.
type Adapter struct {
	db querier
	d  descriptor
}

// Adapters returns the entity search adapters in the portal's fixed search
// order.
func Adapters(db querier) []*Adapter {
	out := make([]*Adapter, len(entities))
	for i, d := range entities {
		out[i] = &Adapter{db: db, d: d}
	}
	return out
}

// Model returns the entity type name.
func (a *Adapter) Model() string { return a.d.model }

// Search returns rows where any match column contains any keyword as a
// case-insensitive substring, newest first by primary key. Soft-deleted
// rows are excluded for entity types that carry a deletion flag. The
// offset/limit window applies to this entity type alone.
//
// Matching is plain substring containment (LIKE '%kw%'): no ranking, no
// match threshold. Keywords containing LIKE wildcards are passed through
// unescaped, same as the portal always did.
func (a *Adapter) Search(
	ctx context.Context, keywords []string, offset, limit int,
) ([]domain.Entry, error) {
	if len(keywords) == 0 {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 10
	}

	query, args := a.d.buildQuery(keywords, offset, limit)
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", a.d.table, err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var pk int64
		var titleEn, titleAr, descEn, descAr, image sql.NullString
		if err := rows.Scan(&pk, &titleEn, &titleAr, &descEn, &descAr, &image); err != nil {
			return nil, fmt.Errorf("scan %s: %w", a.d.table, err)
		}
		entries = append(entries, domain.Entry{
			Model:         a.d.model,
			Category:      a.d.category,
			URL:           a.d.urlPrefix + strconv.FormatInt(pk, 10),
			TitleEn:       titleEn.String,
			TitleAr:       titleAr.String,
			DescriptionEn: descEn.String,
			DescriptionAr: descAr.String,
			ImagePath:     image.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", a.d.table, err)
	}
	return entries, nil
}

// buildQuery assembles the generic per-entity search statement:
//
//	SELECT pk, <slots> FROM <table>
//	WHERE COALESCE(<flag>, 0) = 0
//	  AND (LOWER(c1) LIKE ? OR LOWER(c1) LIKE ? OR ... )
//	ORDER BY pk DESC LIMIT ? OFFSET ?
//
// with one %kw% argument per matchCols x keywords pair (logical OR across
// both dimensions).
func (d descriptor) buildQuery(keywords []string, offset, limit int) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(d.pk)
	for _, col := range []string{d.titleEn, d.titleAr, d.descEn, d.descAr, d.image} {
		b.WriteString(", ")
		if col == "" {
			b.WriteString("NULL")
		} else {
			b.WriteString(col)
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(d.table)
	b.WriteString(" WHERE ")

	if d.deleteFlag != "" {
		b.WriteString("COALESCE(")
		b.WriteString(d.deleteFlag)
		b.WriteString(", 0) = 0 AND ")
	}

	args := make([]any, 0, len(d.matchCols)*len(keywords)+2)
	b.WriteString("(")
	first := true
	for _, col := range d.matchCols {
		for _, kw := range keywords {
			if !first {
				b.WriteString(" OR ")
			}
			first = false
			b.WriteString("LOWER(")
			b.WriteString(col)
			b.WriteString(") LIKE ?")
			args = append(args, "%"+kw+"%")
		}
	}
	b.WriteString(") ORDER BY ")
	b.WriteString(d.pk)
	b.WriteString(" DESC LIMIT ? OFFSET ?")
	args = append(args, limit, offset)

	return b.String(), args
}
