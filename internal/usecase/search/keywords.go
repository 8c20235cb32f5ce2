package search

import (
	"strings"
	"unicode/utf8"

	"github.com/ngdp/geoportal/internal/domain"
)

// stopwords dropped during keyword extraction. The portal serves Arabic and
// English audiences, so both sets are filtered.
var stopwords = map[string]struct{}{
	"i":    {},
	"need": {},
	"the":  {},
	"to":   {},
	"for":  {},
	"من":   {},
	"الى":  {},
	"عن":   {},
}

// ExtractKeywords turns a free-text query into the ordered list of search
// terms used for substring matching. Every rune outside ASCII letters,
// digits, space and the Arabic block is treated as a separator; the result
// is lowercased and split on whitespace; stopwords and tokens of two or
// fewer characters are dropped. Duplicates are retained and order follows
// first appearance in the cleaned text.
//
// An empty result is possible (e.g. the query was all stopwords); callers
// must fall back to the whole lowercased query, see Service.Global.
func ExtractKeywords(query string) []string {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range query {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ',
			domain.IsArabicRune(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(strings.ToLower(b.String()))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := stopwords[w]; skip {
			continue
		}
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}
