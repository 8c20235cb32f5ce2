package search

import (
	"context"
	"errors"
	"testing"

	"github.com/ngdp/geoportal/internal/domain"
)

// --- Mocks ---

type mockAdapter struct {
	model        string
	entries      []domain.Entry
	err          error
	lastKeywords []string
	lastOffset   int
	lastLimit    int
}

func (m *mockAdapter) Model() string { return m.model }

func (m *mockAdapter) Search(
	_ context.Context, keywords []string, offset, limit int,
) ([]domain.Entry, error) {
	m.lastKeywords = keywords
	m.lastOffset = offset
	m.lastLimit = limit
	return m.entries, m.err
}

type mockAssets struct{}

func (mockAssets) ImageURL(path string) *string {
	if path == "" {
		return nil
	}
	u := "https://cdn.example.com/static/" + path
	return &u
}

// --- Tests ---

func TestGlobal_FixedAdapterOrder(t *testing.T) {
	faq := &mockAdapter{model: "FAQ", entries: []domain.Entry{
		{Model: "FAQ", Category: "FAQ", URL: "/faq/2", TitleEn: "privacy policy"},
	}}
	news := &mockAdapter{model: "News", entries: []domain.Entry{
		{Model: "News", Category: "News", URL: "/news/9", TitleEn: "privacy update"},
	}}
	svc := New([]Adapter{faq, news}, mockAssets{})

	cards, err := svc.Global(context.Background(), "privacy", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Model != "FAQ" || cards[1].Model != "News" {
		t.Errorf("adapter order not preserved: %s, %s", cards[0].Model, cards[1].Model)
	}
}

func TestGlobal_KeywordFallback(t *testing.T) {
	a := &mockAdapter{model: "FAQ"}
	svc := New([]Adapter{a}, mockAssets{})

	// "TO" extracts to nothing: stopword after lowering. The empty mock
	// yields ErrNoResults, but the adapter must still have been queried
	// with the fallback keyword.
	if _, err := svc.Global(context.Background(), "TO", 0, 10); !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
	if len(a.lastKeywords) != 1 || a.lastKeywords[0] != "to" {
		t.Errorf("expected fallback keywords [to], got %v", a.lastKeywords)
	}
}

func TestGlobal_BlankQueryRejected(t *testing.T) {
	a := &mockAdapter{model: "FAQ"}
	svc := New([]Adapter{a}, mockAssets{})

	if _, err := svc.Global(context.Background(), "   ", 0, 10); !errors.Is(err, domain.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
	if a.lastKeywords != nil {
		t.Error("adapters must not run for a blank query")
	}
}

func TestGlobal_PerAdapterPagination(t *testing.T) {
	a := &mockAdapter{model: "FAQ"}
	b := &mockAdapter{model: "News"}
	svc := New([]Adapter{a, b}, mockAssets{})

	if _, err := svc.Global(context.Background(), "boundary", 20, 10); !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("expected ErrNoResults from empty adapters, got %v", err)
	}
	for _, m := range []*mockAdapter{a, b} {
		if m.lastOffset != 20 || m.lastLimit != 10 {
			t.Errorf("%s got window (%d,%d), want (20,10)", m.model, m.lastOffset, m.lastLimit)
		}
	}
}

func TestGlobal_AdapterErrorAbortsAggregation(t *testing.T) {
	boom := errors.New("store down")
	a := &mockAdapter{model: "FAQ", entries: []domain.Entry{{Model: "FAQ"}}}
	b := &mockAdapter{model: "News", err: boom}
	c := &mockAdapter{model: "Video"}
	svc := New([]Adapter{a, b, c}, mockAssets{})

	_, err := svc.Global(context.Background(), "boundary", 0, 10)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped adapter error, got %v", err)
	}
	if c.lastKeywords != nil {
		t.Error("adapters after the failing one must not run")
	}
}

func TestGlobal_HighlightsAndResolvesImages(t *testing.T) {
	a := &mockAdapter{model: "News", entries: []domain.Entry{{
		Model:         "News",
		Category:      "News",
		URL:           "/news/4",
		TitleEn:       "Boundary update",
		TitleAr:       "تحديث الحدود",
		DescriptionEn: "New boundary layers published",
		ImagePath:     "news/4.png",
	}}}
	svc := New([]Adapter{a}, mockAssets{})

	cards, err := svc.Global(context.Background(), "boundary", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	card := cards[0]
	if card.TitleEn != "<mark>Boundary</mark> update" {
		t.Errorf("title not highlighted: %q", card.TitleEn)
	}
	if card.DescriptionEn != "New <mark>boundary</mark> layers published" {
		t.Errorf("description not highlighted: %q", card.DescriptionEn)
	}
	if card.Image == nil || *card.Image != "https://cdn.example.com/static/news/4.png" {
		t.Errorf("image not resolved: %v", card.Image)
	}
}

func TestGlobal_NilImageWhenNoPath(t *testing.T) {
	a := &mockAdapter{model: "FAQ", entries: []domain.Entry{{Model: "FAQ", TitleEn: "boundary"}}}
	svc := New([]Adapter{a}, mockAssets{})

	cards, err := svc.Global(context.Background(), "boundary", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cards[0].Image != nil {
		t.Errorf("expected nil image, got %v", *cards[0].Image)
	}
}
