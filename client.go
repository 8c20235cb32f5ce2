// Package geoportal embeds the portal search core in-process: the same
// keyword extraction, entity adapters and chatbot rendering the HTTP API
// serves, without the HTTP server. Intended for batch tooling and internal
// services that read the content database directly.
package geoportal

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngdp/geoportal/internal/db/sqlite"
	"github.com/ngdp/geoportal/internal/domain"
	"github.com/ngdp/geoportal/internal/repository/catalog"
	"github.com/ngdp/geoportal/internal/static"
	chatbotuc "github.com/ngdp/geoportal/internal/usecase/chatbot"
	searchuc "github.com/ngdp/geoportal/internal/usecase/search"
)

// Sentinel errors returned by Search.
var (
	ErrEmptyQuery = domain.ErrEmptyQuery
	ErrNoResults  = domain.ErrNoResults
)

// Card is one search result.
type Card struct {
	Model         string
	Category      string
	URL           string
	TitleEn       string
	TitleAr       string
	DescriptionEn string
	DescriptionAr string
	Image         *string
}

// Answer is one chatbot reply.
type Answer struct {
	HTML     string
	Lang     string
	Fallback bool
}

// Client is the embedded search client.
type Client struct {
	store      *sqlite.Store
	searchSvc  *searchuc.Service
	chatbotSvc *chatbotuc.Service
}

// Open opens the content database and wires the search services.
func Open(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		staticBaseURL: "http://localhost:8080",
		contactURL:    "https://ngd.com/contact",
		contactPhone:  "+966-XXX-XXXX",
		chatbotLimit:  3,
	}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.databasePath == "" {
		return nil, errors.New("geoportal: database path required (use WithDatabase)")
	}

	store, err := sqlite.Open(cfg.databasePath)
	if err != nil {
		return nil, fmt.Errorf("geoportal: open database: %w", err)
	}
	if err := store.Init(); err != nil {
		store.Close()
		return nil, fmt.Errorf("geoportal: init schema: %w", err)
	}

	catalogAdapters := catalog.Adapters(store.DB())
	adapters := make([]searchuc.Adapter, len(catalogAdapters))
	for i, a := range catalogAdapters {
		adapters[i] = a
	}

	searchSvc := searchuc.New(adapters, static.NewResolver(cfg.staticBaseURL))
	chatbotSvc := chatbotuc.New(
		searchSvc,
		chatbotuc.DefaultMessages(cfg.contactURL, cfg.contactPhone),
		cfg.chatbotLimit,
	)

	return &Client{
		store:      store,
		searchSvc:  searchSvc,
		chatbotSvc: chatbotSvc,
	}, nil
}

// Close releases the database connection.
func (c *Client) Close() error {
	return c.store.Close()
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Search runs a global search. skip and limit apply per entity type, same
// as the HTTP API.
func (c *Client) Search(ctx context.Context, query string, skip, limit int) ([]Card, error) {
	cards, err := c.searchSvc.Global(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}

	out := make([]Card, len(cards))
	for i, card := range cards {
		out[i] = cardFromDomain(card)
	}
	return out, nil
}

// Ask answers a free-text question with rendered HTML.
func (c *Client) Ask(ctx context.Context, question string) (Answer, error) {
	ans, err := c.chatbotSvc.Ask(ctx, question)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		HTML:     ans.HTML,
		Lang:     string(ans.Lang),
		Fallback: ans.Fallback,
	}, nil
}

func cardFromDomain(c domain.Card) Card {
	return Card{
		Model:         c.Model,
		Category:      c.Category,
		URL:           c.URL,
		TitleEn:       c.TitleEn,
		TitleAr:       c.TitleAr,
		DescriptionEn: c.DescriptionEn,
		DescriptionAr: c.DescriptionAr,
		Image:         c.Image,
	}
}
