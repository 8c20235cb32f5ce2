package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ngdp/geoportal/internal/domain"
)

// --- Mocks ---

type mockSearcher struct {
	cards     []domain.Card
	err       error
	lastQuery string
	lastSkip  int
	lastLimit int
}

func (m *mockSearcher) Global(
	_ context.Context, query string, skip, limit int,
) ([]domain.Card, error) {
	m.lastQuery = query
	m.lastSkip = skip
	m.lastLimit = limit
	return m.cards, m.err
}

func newTestService(search Searcher) *Service {
	return New(search, DefaultMessages("https://ngd.com/contact", "+966-XXX-XXXX"), 3)
}

func strPtr(s string) *string { return &s }

// --- Tests ---

func TestAsk_UsesFixedWindow(t *testing.T) {
	m := &mockSearcher{}
	svc := newTestService(m)

	if _, err := svc.Ask(context.Background(), "boundary maps"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.lastSkip != 0 || m.lastLimit != 3 {
		t.Errorf("expected window (0,3), got (%d,%d)", m.lastSkip, m.lastLimit)
	}
	if m.lastQuery != "boundary maps" {
		t.Errorf("question not passed through: %q", m.lastQuery)
	}
}

func TestAsk_EnglishFallback(t *testing.T) {
	svc := newTestService(&mockSearcher{})

	ans, err := svc.Ask(context.Background(), "zzzqqqnonsense")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ans.Fallback {
		t.Error("expected fallback answer")
	}
	if ans.Lang != domain.English {
		t.Errorf("expected English, got %s", ans.Lang)
	}
	if !strings.Contains(ans.HTML, "Customer Support") {
		t.Errorf("fallback missing contact channel: %q", ans.HTML)
	}
	if strings.Contains(ans.HTML, "<div") {
		t.Errorf("fallback must not contain result cards: %q", ans.HTML)
	}
}

func TestAsk_ArabicFallback(t *testing.T) {
	svc := newTestService(&mockSearcher{})

	ans, err := svc.Ask(context.Background(), "سؤال بلا جواب")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Lang != domain.Arabic {
		t.Errorf("expected Arabic, got %s", ans.Lang)
	}
	if !strings.Contains(ans.HTML, "خدمة العملاء") {
		t.Errorf("expected Arabic fallback, got %q", ans.HTML)
	}
}

func TestAsk_RendersCards(t *testing.T) {
	m := &mockSearcher{cards: []domain.Card{
		{
			Model:         "FAQ",
			URL:           "/faq/7",
			TitleEn:       "What is the <mark>boundary</mark> layer?",
			DescriptionEn: "All about boundaries",
		},
		{
			Model:         "News",
			URL:           "/news/2",
			TitleEn:       "Boundary news",
			DescriptionEn: "Updated layers",
			Image:         strPtr("https://cdn.example.com/static/news/2.png"),
		},
	}}
	svc := newTestService(m)

	ans, err := svc.Ask(context.Background(), "boundary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Fallback {
		t.Fatal("expected a card answer")
	}
	if !strings.Contains(ans.HTML, "<p>I found a few things that might help you:</p>") {
		t.Errorf("missing intro: %q", ans.HTML)
	}
	if !strings.Contains(ans.HTML, "href='/faq/7'") || !strings.Contains(ans.HTML, "href='/news/2'") {
		t.Errorf("missing card links: %q", ans.HTML)
	}
	if !strings.Contains(ans.HTML, "<mark>boundary</mark>") {
		t.Errorf("highlight markup stripped: %q", ans.HTML)
	}
	if !strings.Contains(ans.HTML, "src='https://cdn.example.com/static/news/2.png'") {
		t.Errorf("missing thumbnail: %q", ans.HTML)
	}
	// FAQ card has no image: exactly one <img> expected.
	if n := strings.Count(ans.HTML, "<img "); n != 1 {
		t.Errorf("expected 1 thumbnail, got %d", n)
	}
}

func TestAsk_ArabicCardUsesArabicSlots(t *testing.T) {
	m := &mockSearcher{cards: []domain.Card{{
		Model:         "News",
		URL:           "/news/5",
		TitleEn:       "English title",
		TitleAr:       "عنوان عربي",
		DescriptionEn: "English description",
		DescriptionAr: "وصف عربي",
	}}}
	svc := newTestService(m)

	ans, err := svc.Ask(context.Background(), "خريطة")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ans.HTML, "عنوان عربي") || strings.Contains(ans.HTML, "English title") {
		t.Errorf("expected Arabic slots, got %q", ans.HTML)
	}
}

func TestAsk_DescriptionTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	m := &mockSearcher{cards: []domain.Card{{
		Model: "News", URL: "/news/1", TitleEn: "t", DescriptionEn: long,
	}}}
	svc := newTestService(m)

	ans, err := svc.Ask(context.Background(), "anything matching")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<small>" + strings.Repeat("x", 120) + "...</small>"
	if !strings.Contains(ans.HTML, want) {
		t.Errorf("expected 120-char cap with ellipsis, got %q", ans.HTML)
	}
}

func TestAsk_EllipsisAlwaysAppended(t *testing.T) {
	m := &mockSearcher{cards: []domain.Card{{
		Model: "News", URL: "/news/1", TitleEn: "t", DescriptionEn: "short",
	}}}
	svc := newTestService(m)

	ans, err := svc.Ask(context.Background(), "short question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ans.HTML, "<small>short...</small>") {
		t.Errorf("ellipsis must be appended even without truncation: %q", ans.HTML)
	}
}

func TestAsk_SearchErrorPropagates(t *testing.T) {
	boom := errors.New("store down")
	svc := newTestService(&mockSearcher{err: boom})

	if _, err := svc.Ask(context.Background(), "boundary"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestInternalErrorMessage_Localized(t *testing.T) {
	svc := newTestService(&mockSearcher{})

	en := svc.InternalErrorMessage(domain.English)
	ar := svc.InternalErrorMessage(domain.Arabic)
	if en == "" || ar == "" || en == ar {
		t.Errorf("expected distinct localized messages, got %q / %q", en, ar)
	}
}
