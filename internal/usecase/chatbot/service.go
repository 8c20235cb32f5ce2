// Package chatbot answers free-text questions by reducing global search
// results to a compact, directly renderable HTML snippet. There is no
// language model behind it: the answer is keyword retrieval over the same
// adapters the search endpoint uses, with a localized fallback when
// nothing matches.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ngdp/geoportal/internal/domain"
)

// descriptionLimit caps the card description at 120 characters. The
// literal "..." is appended whether or not truncation happened - observed
// UI behavior, kept as-is.
const descriptionLimit = 120

// Searcher runs the global aggregation. Implemented by usecase/search.Service.
type Searcher interface {
	Global(ctx context.Context, query string, skip, limit int) ([]domain.Card, error)
}

// Answer is one chatbot reply.
type Answer struct {
	// HTML is the full snippet the chat widget renders. Content originates
	// from admin-curated entities and is treated as trusted markup.
	HTML string

	// Lang is the detected question language.
	Lang domain.Language

	// Fallback is true when no content matched and HTML carries the
	// localized contact message instead of result cards.
	Fallback bool
}

// Service produces chatbot answers.
type Service struct {
	search   Searcher
	messages Messages
	limit    int
}

// New creates a chatbot service. limit is the number of result cards per
// answer (the portal uses 3).
func New(search Searcher, messages Messages, limit int) *Service {
	if limit <= 0 {
		limit = 3
	}
	return &Service{search: search, messages: messages, limit: limit}
}

// Ask answers a question. The question language is detected from the
// presence of Arabic-block characters and selects the intro/fallback
// strings and which title/description slot each card renders.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	lang := domain.DetectLanguage(question)

	cards, err := s.search.Global(ctx, question, 0, s.limit)
	if err != nil && !errors.Is(err, domain.ErrNoResults) {
		return Answer{}, fmt.Errorf("chatbot search: %w", err)
	}

	msgs := s.messages[lang]
	if len(cards) == 0 {
		return Answer{HTML: msgs.Fallback, Lang: lang, Fallback: true}, nil
	}

	var b strings.Builder
	b.WriteString("<p>")
	b.WriteString(msgs.Intro)
	b.WriteString("</p>")
	for _, c := range cards {
		b.WriteString(renderCard(c, lang))
	}
	return Answer{HTML: b.String(), Lang: lang}, nil
}

// InternalErrorMessage returns the localized generic failure text for the
// transport boundary.
func (s *Service) InternalErrorMessage(lang domain.Language) string {
	return s.messages[lang].InternalError
}

// renderCard builds one compact flex card: optional 50x50 thumbnail, the
// localized title linking to the entity page, and the capped description.
// Highlight markup from the aggregator stays embedded.
func renderCard(c domain.Card, lang domain.Language) string {
	title := c.TitleEn
	description := c.DescriptionEn
	if lang == domain.Arabic {
		title = c.TitleAr
		description = c.DescriptionAr
	}

	var b strings.Builder
	b.WriteString("<div style='display:flex;align-items:center;margin-bottom:8px;'>")
	if c.Image != nil {
		b.WriteString("<img src='")
		b.WriteString(*c.Image)
		b.WriteString("' alt='' width='50' height='50' style='border-radius:6px;margin-right:8px;' />")
	}
	b.WriteString("<div><a href='")
	b.WriteString(c.URL)
	b.WriteString("' target='_blank' style='color:#0077cc;font-weight:bold;text-decoration:none;'>")
	b.WriteString(title)
	b.WriteString("</a><br><small>")
	b.WriteString(truncate(description, descriptionLimit))
	b.WriteString("...</small></div></div>")
	return b.String()
}

// truncate returns the first n characters of s. Rune-based so Arabic text
// is never cut mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
